package services

// Services defined in this package:
// - StudentService: validation, registration-number uniqueness, lifecycle
// - CourseService: validation, course-code uniqueness, lifecycle
// - EnrollmentService: referential integrity, grade rules, term uniqueness
// - ReportService: transcript, roster and summary rendering over the above
