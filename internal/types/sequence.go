package types

// IDSequence backs the shared id sequence for person and book rows. A single
// row holds the high-water mark; blocks are carved off it in batches.
type IDSequence struct {
	ID      int64 `gorm:"primaryKey;autoIncrement:false"`
	NextVal int64 `gorm:"not null;column:next_val"`
}

func (IDSequence) TableName() string {
	return "id_sequence"
}
