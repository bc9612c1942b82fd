package schema

// CoreItemTable represents the 'core.item' table
type CoreItemTable struct {
	Table     string
	ID        string
	Slug      string
	Type      string
	Status    string
	Title     string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// CoreItem is the schema definition for core.item
var CoreItem = CoreItemTable{
	Table:     "core.item",
	ID:        "id",
	Slug:      "slug",
	Type:      "type",
	Status:    "status",
	Title:     "title",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}
