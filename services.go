package askademy

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

type authService struct {
	c *Client
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var res AuthResponse
	err := s.c.doJSON(ctx, http.MethodPost, "/auth/login", LoginInput{Email: email, Password: password}, &res)
	return res, err
}

// Register creates the account. The backend also returns a token here, but
// the client discards it and requires an explicit login.
func (s *authService) Register(ctx context.Context, input RegisterInput) error {
	return s.c.doJSON(ctx, http.MethodPost, "/auth/register", input, nil)
}

// CourseService covers the course endpoints.
type CourseService struct {
	c *Client
}

func (s *CourseService) List(ctx context.Context) ([]Course, error) {
	var courses []Course
	err := s.c.doJSON(ctx, http.MethodGet, "/courses", nil, &courses)
	return courses, err
}

func (s *CourseService) Get(ctx context.Context, courseID int64) (Course, error) {
	var course Course
	err := s.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/courses/%d", courseID), nil, &course)
	return course, err
}

// ProfessorCourses lists the courses the current professor teaches.
func (s *CourseService) ProfessorCourses(ctx context.Context) ([]Course, error) {
	var courses []Course
	err := s.c.doJSON(ctx, http.MethodGet, "/courses/professor", nil, &courses)
	return courses, err
}

// StudentCourses lists the courses the current student is enrolled in.
func (s *CourseService) StudentCourses(ctx context.Context) ([]Course, error) {
	var courses []Course
	err := s.c.doJSON(ctx, http.MethodGet, "/courses/student", nil, &courses)
	return courses, err
}

func (s *CourseService) Create(ctx context.Context, input CreateCourseInput) (Course, error) {
	var course Course
	err := s.c.doJSON(ctx, http.MethodPost, "/courses", input, &course)
	return course, err
}

func (s *CourseService) Enroll(ctx context.Context, courseID int64) error {
	return s.c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/courses/%d/enroll", courseID), nil, nil)
}

// EnrollByCode enrolls using the 8-character course code; the backend takes
// the code as a raw text body.
func (s *CourseService) EnrollByCode(ctx context.Context, courseCode string) error {
	return s.c.doText(ctx, http.MethodPost, "/courses/enroll-by-code", courseCode, nil)
}

// UpdateGradingInfo replaces the grading guide text for a course.
func (s *CourseService) UpdateGradingInfo(ctx context.Context, courseID int64, gradingInfo string) error {
	return s.c.doText(ctx, http.MethodPut, fmt.Sprintf("/courses/%d/grading", courseID), gradingInfo, nil)
}

func (s *CourseService) Delete(ctx context.Context, courseID int64) error {
	return s.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/courses/%d", courseID), nil, nil)
}

// QuestionService covers the question endpoints.
type QuestionService struct {
	c *Client
}

// ListByCourse lists a course's questions, optionally filtered
// (e.g. "answered", "unanswered").
func (s *QuestionService) ListByCourse(ctx context.Context, courseID int64, filter string) ([]Question, error) {
	path := fmt.Sprintf("/questions/course/%d", courseID)
	if filter != "" {
		path += "?filter=" + url.QueryEscape(filter)
	}

	var questions []Question
	err := s.c.doJSON(ctx, http.MethodGet, path, nil, &questions)
	return questions, err
}

// Grouped lists the course's questions clustered by semantic similarity at
// the given threshold. The grouping itself is backend work.
func (s *QuestionService) Grouped(ctx context.Context, courseID int64, threshold float64) ([]QuestionGroup, error) {
	path := fmt.Sprintf("/questions/grouped/%d?threshold=%s",
		courseID, strconv.FormatFloat(threshold, 'f', -1, 64))

	var groups []QuestionGroup
	err := s.c.doJSON(ctx, http.MethodGet, path, nil, &groups)
	return groups, err
}

func (s *QuestionService) Create(ctx context.Context, input CreateQuestionInput) (Question, error) {
	var question Question
	err := s.c.doJSON(ctx, http.MethodPost, "/questions", input, &question)
	return question, err
}

func (s *QuestionService) Delete(ctx context.Context, questionID int64) error {
	return s.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/questions/%d", questionID), nil, nil)
}

// AnswerService covers the answer endpoints.
type AnswerService struct {
	c *Client
}

func (s *AnswerService) ListByQuestion(ctx context.Context, questionID int64) ([]Answer, error) {
	var answers []Answer
	err := s.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/answers/question/%d", questionID), nil, &answers)
	return answers, err
}

func (s *AnswerService) Create(ctx context.Context, input CreateAnswerInput) (Answer, error) {
	var answer Answer
	err := s.c.doJSON(ctx, http.MethodPost, "/answers", input, &answer)
	return answer, err
}

// CreateBatch posts one answer across every question in a similarity group.
func (s *AnswerService) CreateBatch(ctx context.Context, input BatchAnswerInput) ([]Answer, error) {
	var answers []Answer
	err := s.c.doJSON(ctx, http.MethodPost, "/answers/batch", input, &answers)
	return answers, err
}

// Verify marks an answer as professor-verified.
func (s *AnswerService) Verify(ctx context.Context, answerID int64) error {
	return s.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/answers/%d/verify", answerID), nil, nil)
}

func (s *AnswerService) Delete(ctx context.Context, answerID int64) error {
	return s.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/answers/%d", answerID), nil, nil)
}

// AnnouncementService covers the per-course announcement endpoints.
type AnnouncementService struct {
	c *Client
}

func (s *AnnouncementService) ListByCourse(ctx context.Context, courseID int64) ([]Announcement, error) {
	var announcements []Announcement
	err := s.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/courses/%d/announcements", courseID), nil, &announcements)
	return announcements, err
}

func (s *AnnouncementService) Create(ctx context.Context, courseID int64, input CreateAnnouncementInput) (Announcement, error) {
	var announcement Announcement
	err := s.c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/courses/%d/announcements", courseID), input, &announcement)
	return announcement, err
}

func (s *AnnouncementService) Delete(ctx context.Context, courseID, announcementID int64) error {
	return s.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/courses/%d/announcements/%d", courseID, announcementID), nil, nil)
}

// AdminService covers the admin-only aggregate endpoints.
type AdminService struct {
	c *Client
}

func (s *AdminService) Stats(ctx context.Context) (AdminStats, error) {
	var stats AdminStats
	err := s.c.doJSON(ctx, http.MethodGet, "/admin/stats", nil, &stats)
	return stats, err
}

func (s *AdminService) Users(ctx context.Context) ([]User, error) {
	var users []User
	err := s.c.doJSON(ctx, http.MethodGet, "/admin/users", nil, &users)
	return users, err
}

func (s *AdminService) Courses(ctx context.Context) ([]Course, error) {
	var courses []Course
	err := s.c.doJSON(ctx, http.MethodGet, "/admin/courses", nil, &courses)
	return courses, err
}

func (s *AdminService) Questions(ctx context.Context) ([]Question, error) {
	var questions []Question
	err := s.c.doJSON(ctx, http.MethodGet, "/admin/questions", nil, &questions)
	return questions, err
}

func (s *AdminService) Answers(ctx context.Context) ([]Answer, error) {
	var answers []Answer
	err := s.c.doJSON(ctx, http.MethodGet, "/admin/answers", nil, &answers)
	return answers, err
}
