package models

// Контент, закрытый access gate. Управление контентом - вне скоупа,
// модели нужны только для выдачи списков платным аккаунтам.

type Class struct {
	BaseModel
	Title       string `gorm:"not null"`
	Description string
	MentorName  string
	MeetingURL  string
	Schedule    string
}

type VideoLecture struct {
	BaseModel
	Title       string `gorm:"not null"`
	Description string
	VideoURL    string `gorm:"not null"`
	DurationMin int
}

type Job struct {
	BaseModel
	Title    string `gorm:"not null"`
	Company  string `gorm:"not null"`
	Location string
	IsActive bool `gorm:"default:true"`
}
