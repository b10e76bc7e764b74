package models

// Note is the persisted record managed by the notes resource.
type Note struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Contents string `gorm:"column:contents;size:16" json:"contents"`
	Number   int    `gorm:"column:number" json:"number"`
}

// TableName overrides GORM's pluralized default to keep the table name
// stable regardless of the struct name.
func (Note) TableName() string {
	return "notes"
}
