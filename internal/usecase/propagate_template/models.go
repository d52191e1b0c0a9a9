package propagate_template

// Request модель запроса на распространение шаблона дня
type Request struct {
	SourceDate  string   // Дата-источник в формате YYYY-MM-DD
	TargetDates []string // Целевые даты; совпадающие с источником пропускаются
}

// Response модель ответа с результатом распространения
type Response struct {
	SourceDate     string
	AppliedDates   []string // Даты, на которые шаблон был применен
	SkippedDates   []string // Даты, пропущенные как совпадающие с источником
	SlotsPerTarget int      // Количество слотов, записанных в каждую дату
}
