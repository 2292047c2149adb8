package types

// Person is the persistence shape of a user. Required columns are pointers so
// a missing field reaches the store as NULL and is rejected there, matching
// the schema rather than pre-validating in the service layer. Rating never
// appears in the wire shape; updates leave it untouched.
type Person struct {
	ID       int64   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	FullName *string `gorm:"not null;column:full_name" json:"full_name"`
	Title    *string `gorm:"not null;column:title" json:"title"`
	Age      *int    `gorm:"not null;column:age" json:"age"`
	Rating   *int    `gorm:"column:rating" json:"rating,omitempty"`
}

func (Person) TableName() string {
	return "person"
}
