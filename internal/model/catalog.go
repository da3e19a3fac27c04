package model

// MaterialType distinguishes uploaded files from plain external links.
type MaterialType string

const (
	MaterialFile MaterialType = "file"
	MaterialLink MaterialType = "link"
)

// swagger:model Course
type Course struct {
	UUIDBase
	Title       string   `gorm:"size:255;not null" json:"title"`
	Category    string   `gorm:"size:100" json:"category"`
	Mode        string   `gorm:"size:50" json:"mode"`
	Level       string   `gorm:"size:50" json:"level"`
	Description string   `gorm:"type:text" json:"description"`
	IsPublished bool     `gorm:"default:false" json:"is_published"`
	Modules     []Module `gorm:"foreignKey:CourseID" json:"modules"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model Module
type Module struct {
	UUIDBase
	CourseID        string     `gorm:"type:varchar(36);index;not null" json:"course_id"`
	Title           string     `gorm:"size:255;not null" json:"title"`
	Summary         string     `gorm:"type:text" json:"summary"`
	OrderIndex      int        `gorm:"default:0" json:"order_index"`
	DurationMinutes int        `gorm:"default:0" json:"duration_minutes"`
	IsPublished     bool       `gorm:"default:false" json:"is_published"`
	Materials       []Material `gorm:"foreignKey:ModuleID" json:"materials"`
}

func (Module) TableName() string {
	return "modules"
}

// swagger:model Material
type Material struct {
	UUIDBase
	ModuleID     string       `gorm:"type:varchar(36);index;not null" json:"module_id"`
	Title        string       `gorm:"size:255;not null" json:"title"`
	MaterialType MaterialType `gorm:"size:20;default:'file'" json:"material_type"`
	StoragePath  string       `gorm:"size:512" json:"storage_path"`
	URL          string       `gorm:"size:512" json:"url"`
	CreatedBy    uint         `gorm:"index" json:"created_by"`
}

func (Material) TableName() string {
	return "materials"
}
