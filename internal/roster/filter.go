package roster

import (
	"strconv"
	"strings"

	"github.com/bagdasarian/project-roster/internal/domain"
)

// ParseProjectID читает id проекта из сегмента маршрута: учитываются ведущие
// цифры ("5abc" дает 5), все остальное дает 0. Проекта с id 0 не бывает.
func ParseProjectID(raw string) int {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	id, err := strconv.Atoi(s[:end])
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// FilterMembers оставляет участников, чье имя содержит query без учета регистра.
// Возвращает новый срез в исходном порядке; пустой запрос оставляет всех.
func FilterMembers(members []domain.TeamMember, query string) []domain.TeamMember {
	filtered := make([]domain.TeamMember, 0, len(members))
	if query == "" {
		return append(filtered, members...)
	}

	needle := strings.ToLower(query)
	for _, member := range members {
		if strings.Contains(strings.ToLower(member.Name), needle) {
			filtered = append(filtered, member)
		}
	}
	return filtered
}

// ContactDigits убирает из номера whatsapp все, кроме 0-9.
// Результат не проверяется и может быть пустым.
func ContactDigits(number string) string {
	var b strings.Builder
	b.Grow(len(number))
	for i := 0; i < len(number); i++ {
		if c := number[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func ContactLink(number string) string {
	return "https://wa.me/" + ContactDigits(number)
}

// CanRemove сообщает, показывать ли посетителю кнопку удаления в строке участника
func CanRemove(viewer domain.AdminStatus, member domain.TeamMember) bool {
	return viewer.CanRemove(member)
}
