package domain

type CourseInfo struct {
	CourseCode   string
	CourseName   string
	SyllabusText string
	Professor    string
	Location     string
	ClassPolicy  string
	LatePolicy   string
	OfficeHours  string
}

type CourseSummary struct {
	CourseCode string
	CourseName string
}

type UserCourses struct {
	CourseCodes []string
	Courses     []CourseSummary
}

type HealthStatus struct {
	OK       bool
	Database string
	Error    string
}

// Enrollment is the result of the join handshake. UserID is kept raw because
// the service's answer still has to be validated.
type Enrollment struct {
	UserID      string
	CourseCode  string
	DisplayName string
}
