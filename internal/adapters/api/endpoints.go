package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/bnema/coursecupid-cli/internal/ports"
)

var _ ports.MatchService = (*Client)(nil)

func (c *Client) JoinCourse(ctx context.Context, courseCode, displayName string) (domain.Enrollment, error) {
	var resp demoAuthResponse
	err := c.Call(ctx, http.MethodPost, "/auth/demo", demoAuthRequest{CourseCode: courseCode, DisplayName: displayName}, &resp)
	if err != nil {
		return domain.Enrollment{}, err
	}

	enrolled := resp.CourseCode
	if enrolled == "" {
		enrolled = courseCode
	}

	return domain.Enrollment{UserID: resp.UserID, CourseCode: enrolled, DisplayName: resp.DisplayName}, nil
}

func (c *Client) Course(ctx context.Context, courseCode string) (domain.CourseInfo, error) {
	var resp courseResponse
	if err := c.Call(ctx, http.MethodGet, "/course"+Query(map[string]string{"courseCode": courseCode}), nil, &resp); err != nil {
		return domain.CourseInfo{}, err
	}

	code := resp.CourseCode
	if code == "" {
		code = courseCode
	}

	return domain.CourseInfo{
		CourseCode:   code,
		CourseName:   resp.CourseName,
		SyllabusText: resp.SyllabusText,
		Professor:    resp.Professor,
		Location:     resp.Location,
		ClassPolicy:  resp.ClassPolicy,
		LatePolicy:   resp.LatePolicy,
		OfficeHours:  resp.OfficeHours,
	}, nil
}

func (c *Client) UserCourses(ctx context.Context) (domain.UserCourses, error) {
	var resp userCoursesResponse
	if err := c.Call(ctx, http.MethodGet, "/user/courses", nil, &resp); err != nil {
		return domain.UserCourses{}, err
	}

	courses := make([]domain.CourseSummary, 0, len(resp.Courses))
	for _, course := range resp.Courses {
		courses = append(courses, domain.CourseSummary{CourseCode: course.CourseCode, CourseName: course.CourseName})
	}

	return domain.UserCourses{CourseCodes: resp.CourseCodes, Courses: courses}, nil
}

func (c *Client) AddCourse(ctx context.Context, courseCode string) error {
	return c.Call(ctx, http.MethodPost, "/user/add-course"+Query(map[string]string{"courseCode": courseCode}), nil, nil)
}

func (c *Client) UpsertProfile(ctx context.Context, userID domain.Token, profile domain.Profile) error {
	req := profileRequest{
		CourseCode:   profile.CourseCode,
		UserID:       string(userID),
		DisplayName:  profile.DisplayName,
		RolePrefs:    nonNil(profile.RolePreferences),
		Roles:        nonNil(profile.RolePreferences),
		Skills:       nonNil(profile.Skills),
		Availability: nonNil(profile.Availability),
		Goals:        profile.Goals,
	}
	if !profile.Contact.Empty() {
		req.Contact = &contactPayload{
			Discord:  profile.Contact.Discord,
			LinkedIn: profile.Contact.LinkedIn,
			Email:    profile.Contact.Email,
		}
	}

	return c.Call(ctx, http.MethodPost, "/profile", req, nil)
}

// Recommendations keeps the service's ranking order.
func (c *Client) Recommendations(ctx context.Context, courseCode string, mode domain.MatchMode) ([]domain.CandidateProfile, error) {
	var resp recommendationsResponse
	path := "/recommendations" + Query(map[string]string{"courseCode": courseCode, "mode": string(mode)})
	if err := c.Call(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	payloads := resp.Candidates
	if len(payloads) == 0 {
		payloads = resp.Recommendations
	}

	candidates := make([]domain.CandidateProfile, 0, len(payloads))
	for _, payload := range payloads {
		candidates = append(candidates, payload.toDomain())
	}

	return candidates, nil
}

func (c *Client) Swipe(ctx context.Context, req domain.SwipeRequest) (domain.SwipeResult, error) {
	var resp swipeResponse
	err := c.Call(ctx, http.MethodPost, "/swipe", swipeRequest{
		CourseCode:   req.CourseCode,
		UserID:       string(req.ActorID),
		TargetUserID: string(req.TargetID),
		Decision:     string(req.Decision),
	}, &resp)
	if err != nil {
		return domain.SwipeResult{}, err
	}

	return domain.SwipeResult{Mutual: resp.Mutual, PodUpdated: resp.PodUpdated, PodID: resp.PodID}, nil
}

func (c *Client) Pod(ctx context.Context, courseCode string) (domain.GroupState, error) {
	var resp podResponse
	if err := c.Call(ctx, http.MethodGet, "/pod"+Query(map[string]string{"courseCode": courseCode}), nil, &resp); err != nil {
		return nil, err
	}

	state, err := resp.toDomain()
	if err != nil {
		return nil, fmt.Errorf("decode /pod response: %w", err)
	}

	return state, nil
}

func (c *Client) SetHub(ctx context.Context, courseCode string, userID domain.Token, hubLink string) error {
	return c.Call(ctx, http.MethodPost, "/pod/hub", hubRequest{CourseCode: courseCode, UserID: string(userID), HubLink: hubLink}, nil)
}

// Heartbeat sends the course both as query parameter and in the body; the
// service reads the former.
func (c *Client) Heartbeat(ctx context.Context, courseCode string, userID domain.Token) error {
	path := "/heartbeat" + Query(map[string]string{"courseCode": courseCode})
	return c.Call(ctx, http.MethodPost, path, heartbeatRequest{CourseCode: courseCode, UserID: string(userID)}, nil)
}

func (c *Client) Ask(ctx context.Context, courseCode, question string, token domain.Token) (domain.AskExchange, error) {
	var resp askResponse
	err := c.Call(ctx, http.MethodPost, "/ask", askRequest{CourseCode: courseCode, Question: question}, &resp, WithToken(string(token)))
	if err != nil {
		return domain.AskExchange{}, err
	}

	return resp.toDomain(question), nil
}

func (c *Client) CreateTicket(ctx context.Context, courseCode string, userID domain.Token, question string) (domain.Ticket, error) {
	var resp ticketResponse
	err := c.Call(ctx, http.MethodPost, "/tickets", ticketRequest{CourseCode: courseCode, UserID: string(userID), Question: question}, &resp)
	if err != nil {
		return domain.Ticket{}, err
	}

	return domain.Ticket{OK: resp.OK, TicketID: resp.TicketID, Message: resp.Message}, nil
}

func (c *Client) Health(ctx context.Context) (domain.HealthStatus, error) {
	var resp healthResponse
	if err := c.Call(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return domain.HealthStatus{}, err
	}

	return domain.HealthStatus{OK: resp.OK, Database: resp.DB, Error: resp.Error}, nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
