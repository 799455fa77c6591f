package domain

import "time"

type Project struct {
	ID          int
	Name        string
	Description string
	CreatedAt   time.Time
}

// ProjectSummary - проект со счетчиком участников для списка на главной
type ProjectSummary struct {
	Project
	MemberCount int
}
