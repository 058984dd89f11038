package askademy

import "time"

// User is an account as the backend serializes it. Only the fields the
// client renders or compares are modeled; password material never reaches
// the client.
type User struct {
	ID        int64  `json:"id,omitempty"`
	FirstName string `json:"firstname,omitempty"`
	LastName  string `json:"lastname,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      Role   `json:"role,omitempty"`
}

// DisplayName mirrors the way the question list labels authors: full name
// when present, the email's local part otherwise, a role label as last
// resort.
func (u *User) DisplayName() string {
	if u == nil {
		return "Unknown"
	}
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	if u.Email != "" {
		return u.Email
	}
	if u.Role == RoleProfessor {
		return "Professor"
	}
	return "Student"
}

// Course is a classroom course. Professor carries the owning account
// reference the policy compares against.
type Course struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	CourseCode  string `json:"courseCode,omitempty"`
	Description string `json:"description,omitempty"`
	GradingInfo string `json:"gradingInfo,omitempty"`
	Professor   *User  `json:"professor,omitempty"`
	Students    []User `json:"students,omitempty"`
}

// Question is a student question within a course.
type Question struct {
	ID        int64      `json:"id,omitempty"`
	Title     string     `json:"title,omitempty"`
	Content   string     `json:"content,omitempty"`
	Author    *User      `json:"author,omitempty"`
	Course    *Course    `json:"course,omitempty"`
	Anonymous bool       `json:"anonymous,omitempty"`
	Answers   []Answer   `json:"answers,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Answer is a reply to a question; professors may mark it verified.
type Answer struct {
	ID        int64      `json:"id,omitempty"`
	Content   string     `json:"content,omitempty"`
	Author    *User      `json:"author,omitempty"`
	Question  *Question  `json:"question,omitempty"`
	Verified  bool       `json:"verified"`
	Anonymous bool       `json:"anonymous"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Announcement is a professor-authored course notice.
type Announcement struct {
	ID        int64      `json:"id,omitempty"`
	Title     string     `json:"title,omitempty"`
	Content   string     `json:"content,omitempty"`
	Course    *Course    `json:"course,omitempty"`
	Professor *User      `json:"professor,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// SimilarQuestion pairs a question with its similarity score to the group's
// main question. Grouping itself happens on the backend.
type SimilarQuestion struct {
	Question        Question `json:"question"`
	SimilarityScore float64  `json:"similarityScore"`
}

// QuestionGroup is a cluster of semantically similar questions.
type QuestionGroup struct {
	MainQuestion     Question          `json:"mainQuestion"`
	SimilarQuestions []SimilarQuestion `json:"similarQuestions"`
	TotalSimilar     int               `json:"totalSimilar"`
}

// AdminStats is the aggregate counters map served by the admin stats
// endpoint (totalUsers, totalCourses, totalQuestions, totalAnswers).
type AdminStats map[string]int64

// CreateCourseInput is the payload for creating a course.
type CreateCourseInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateQuestionInput is the payload for posting a question.
type CreateQuestionInput struct {
	CourseID  int64  `json:"courseId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Anonymous bool   `json:"anonymous"`
}

// CreateAnswerInput is the payload for posting an answer.
type CreateAnswerInput struct {
	QuestionID int64  `json:"questionId"`
	Content    string `json:"content"`
	Anonymous  bool   `json:"anonymous"`
}

// BatchAnswerInput posts one answer to every question in a similarity group.
type BatchAnswerInput struct {
	QuestionIDs []int64 `json:"questionIds"`
	Content     string  `json:"content"`
	AutoVerify  bool    `json:"autoVerify"`
	Anonymous   bool    `json:"anonymous"`
}

// CreateAnnouncementInput is the payload for posting an announcement.
type CreateAnnouncementInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
