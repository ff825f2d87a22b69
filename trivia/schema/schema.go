package schema

type Category struct {
	Id   uint   `gorm:"primaryKey"`
	Type string `gorm:"size:120;not null"`

	Questions []Question `gorm:"foreignKey:CategoryId;constraint:OnDelete:CASCADE"`
}

type Question struct {
	Id uint `gorm:"primaryKey"`

	QuestionText string `gorm:"column:question;size:500;not null"`
	AnswerText   string `gorm:"column:answer;size:500;not null"`
	Difficulty   int    `gorm:"not null"`

	CategoryId uint      `gorm:"not null"`
	Category   *Category `gorm:"foreignKey:CategoryId"`
}

// AllCategories is the sentinel category id meaning "no category filter".
// Stored categories are autoincremented from 1 so the sentinel never
// collides with a real row.
const AllCategories uint = 0
