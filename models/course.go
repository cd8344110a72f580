package models

// Course represents a course students can be enrolled in. Courses are
// created by admins and have no update or delete operations.
type Course struct {
	// CourseID is the internal unique identifier of the course.
	CourseID int64 `json:"id"`

	// Name is the unique human-readable course name.
	Name string `json:"name"`

	// Description is a free-form course description.
	Description string `json:"description"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}
