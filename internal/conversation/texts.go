package conversation

// User-facing texts. The bot speaks Russian only.
const (
	greetingFmt = "Здравствуйте %s, вас приветствует КГТУбот, здесь вы можете смотреть расписание для вашей группы. Введите номер своей группы и используйте меню, чтобы изменить номер группы"

	textGroupFound     = "Номер группы найден, что вы хотите сделать?"
	textGroupSaved     = "Номер группы сохранен, что вы хотите сделать?"
	textGroupInvalid   = "Такой группы не существует. Пожалуйста, введите корректный номер группы."
	textGroupMissing   = "Номер группы не найден. Пожалуйста, введите номер группы снова."
	textChangePrompt   = "Введите новый номер группы"
	textNotUnderstood  = "Я вас не понимаю, пожалуйста используйте меню)"
	scheduleHeaderFmt  = "Расписание для группы %s на %s:\n%s"
	scheduleMissingFmt = "Расписание для группы %s на %s не найдено"
)
