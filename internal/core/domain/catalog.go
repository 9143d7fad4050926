package domain

// Academic reference entities. These are plain lookup tables: the backend
// only does existence checks and CRUD over them.

type Faculty struct {
	FacultyID   string `json:"faculty_id" bson:"faculty_id"`
	FacultyName string `json:"faculty_name" bson:"faculty_name"`
}

type Major struct {
	MajorID   string `json:"major_id" bson:"major_id"`
	FacultyID string `json:"faculty_id" bson:"faculty_id"`
	MajorName string `json:"major_name" bson:"major_name"`
}

type EducationLevel struct {
	EduLevelID   string `json:"edu_level_id" bson:"edu_level_id"`
	EduLevelName string `json:"edu_level_name" bson:"edu_level_name"`
}

// Class is an administrative class (a cohort), not a scheduled lesson.
type Class struct {
	ClassID    string `json:"class_id" bson:"class_id"`
	MajorID    string `json:"major_id" bson:"major_id"`
	EduLevelID string `json:"edu_level_id" bson:"edu_level_id"`
	ClassName  string `json:"class_name" bson:"class_name"`
	Course     string `json:"course" bson:"course"` // cohort label, e.g. K19
	EnrollYear int    `json:"enroll_year" bson:"enroll_year"`
}

type Subject struct {
	SubjectID   string `json:"subject_id" bson:"subject_id"`
	SubjectName string `json:"subject_name" bson:"subject_name"`
	Credits     int    `json:"credits" bson:"credits"`
	Theory      int    `json:"theory" bson:"theory"`
	Practice    int    `json:"practice" bson:"practice"`
	Semester    int    `json:"semester" bson:"semester"`
}

type Room struct {
	RoomID   string `json:"room_id" bson:"room_id"`
	RoomName string `json:"room_name" bson:"room_name"`
}
