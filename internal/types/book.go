package types

// Book rows reference their owner through user_id. The reference is soft:
// no FK constraint is created, integrity is the orchestration layer's job.
type Book struct {
	ID        int64   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UserID    *int64  `gorm:"not null;column:user_id;index" json:"user_id"`
	Title     *string `gorm:"not null;column:title" json:"title"`
	Author    *string `gorm:"not null;column:author" json:"author"`
	PageCount *int64  `gorm:"not null;column:page_count" json:"page_count"`
}

func (Book) TableName() string {
	return "book"
}
