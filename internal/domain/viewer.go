package domain

// AdminStatus описывает текущего посетителя так, как его видит бэкенд.
// Значение вычисляется на каждый запрос из сессии и нигде не хранится.
type AdminStatus struct {
	IsAdmin bool
	UserID  string
}

// Anonymous - посетитель без сессии
var Anonymous = AdminStatus{}

func (a AdminStatus) Authenticated() bool {
	return a.UserID != ""
}

// CanRemove сообщает, может ли посетитель удалить участника из команды:
// администратор может удалить любого, остальные только себя.
func (a AdminStatus) CanRemove(member TeamMember) bool {
	if a.IsAdmin {
		return true
	}
	return a.UserID != "" && a.UserID == member.UserID
}
