package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/coursecupid-cli/internal/domain"
)

type demoAuthRequest struct {
	CourseCode  string `json:"courseCode"`
	DisplayName string `json:"displayName,omitempty"`
}

type demoAuthResponse struct {
	UserID      string `json:"userId"`
	CourseCode  string `json:"courseCode"`
	DisplayName string `json:"displayName"`
}

type courseResponse struct {
	CourseCode   string `json:"courseCode"`
	CourseName   string `json:"courseName"`
	SyllabusText string `json:"syllabusText"`
	Professor    string `json:"professor"`
	Location     string `json:"location"`
	ClassPolicy  string `json:"classPolicy"`
	LatePolicy   string `json:"latePolicy"`
	OfficeHours  string `json:"officeHours"`
}

type userCoursesResponse struct {
	CourseCodes []string `json:"courseCodes"`
	Courses     []struct {
		CourseCode string `json:"courseCode"`
		CourseName string `json:"courseName"`
	} `json:"courses"`
}

type contactPayload struct {
	Discord  string `json:"discord,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Email    string `json:"email,omitempty"`
}

func (c *contactPayload) toDomain() domain.ContactInfo {
	if c == nil {
		return domain.ContactInfo{}
	}

	return domain.ContactInfo{Discord: c.Discord, LinkedIn: c.LinkedIn, Email: c.Email}
}

// profileRequest carries the role list under both names the service has used.
type profileRequest struct {
	CourseCode   string          `json:"courseCode"`
	UserID       string          `json:"userId"`
	DisplayName  string          `json:"displayName,omitempty"`
	RolePrefs    []string        `json:"rolePrefs"`
	Roles        []string        `json:"roles"`
	Skills       []string        `json:"skills"`
	Availability []string        `json:"availability"`
	Goals        string          `json:"goals,omitempty"`
	Contact      *contactPayload `json:"contact,omitempty"`
}

type candidatePayload struct {
	UserID       string    `json:"userId"`
	DisplayName  string    `json:"displayName"`
	Bio          string    `json:"bio"`
	RolePrefs    []string  `json:"rolePrefs"`
	Roles        []string  `json:"roles"`
	Skills       []string  `json:"skills"`
	Availability []string  `json:"availability"`
	Reasons      []string  `json:"reasons"`
	LastActiveAt timestamp `json:"lastActiveAt"`
	LastActive   string    `json:"lastActive"`
	Score        *float64  `json:"score"`
}

type recommendationsResponse struct {
	Candidates      []candidatePayload `json:"candidates"`
	Recommendations []candidatePayload `json:"recommendations"`
}

type swipeRequest struct {
	CourseCode   string `json:"courseCode"`
	UserID       string `json:"userId"`
	TargetUserID string `json:"targetUserId"`
	Decision     string `json:"decision"`
}

type swipeResponse struct {
	OK         bool   `json:"ok"`
	Mutual     bool   `json:"mutual"`
	PodUpdated bool   `json:"podUpdated"`
	PodID      string `json:"podId"`
}

type memberPayload struct {
	UserID          string          `json:"userId"`
	DisplayName     string          `json:"displayName"`
	RolePrefs       []string        `json:"rolePrefs"`
	Roles           []string        `json:"roles"`
	Skills          []string        `json:"skills"`
	Availability    []string        `json:"availability"`
	LastActiveAt    timestamp       `json:"lastActiveAt"`
	ContactUnlocked bool            `json:"contactUnlocked"`
	Contact         *contactPayload `json:"contact"`
}

type podResponse struct {
	PodID              string          `json:"podId"`
	CourseCode         string          `json:"courseCode"`
	LeaderID           string          `json:"leaderId"`
	LeaderUserID       string          `json:"leaderUserId"`
	MemberIDs          []string        `json:"memberIds"`
	Members            []memberPayload `json:"members"`
	UnlockedContactIDs []string        `json:"unlockedContactIds"`
	HubLink            *string         `json:"hubLink"`
}

type hubRequest struct {
	CourseCode string `json:"courseCode"`
	UserID     string `json:"userId"`
	HubLink    string `json:"hubLink"`
}

type heartbeatRequest struct {
	CourseCode string `json:"courseCode"`
	UserID     string `json:"userId"`
}

type askRequest struct {
	CourseCode string `json:"courseCode"`
	Question   string `json:"question"`
}

type askResponse struct {
	Layer  flexInt   `json:"layer"`
	Answer string    `json:"answer"`
	Links  []askLink `json:"links"`
}

type ticketRequest struct {
	CourseCode string `json:"courseCode"`
	UserID     string `json:"userId"`
	Question   string `json:"question"`
}

type ticketResponse struct {
	OK       bool   `json:"ok"`
	TicketID string `json:"ticketId"`
	Message  string `json:"message"`
}

type healthResponse struct {
	OK    bool   `json:"ok"`
	DB    string `json:"db"`
	Error string `json:"error"`
}

// askLink accepts either a bare URL string or a {title, url} object.
type askLink struct {
	link domain.Link
}

func (l *askLink) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		l.link = domain.NewLink("", raw)
		return nil
	}

	var obj struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decode link: %w", err)
	}
	l.link = domain.NewLink(obj.Title, obj.URL)

	return nil
}

// flexInt accepts a JSON number or a numeric string.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	text := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if text == "" || text == "null" {
		*n = 0
		return nil
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("decode number %q: %w", text, err)
	}
	*n = flexInt(value)

	return nil
}

// timestamp tolerates RFC 3339 values as well as naive ISO timestamps, which
// are read as UTC. Unparseable values are treated as absent.
type timestamp struct {
	value *time.Time
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func (ts *timestamp) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil || strings.TrimSpace(*raw) == "" {
		ts.value = nil
		return nil
	}

	text := strings.TrimSpace(*raw)
	if parsed, err := time.Parse(time.RFC3339Nano, text); err == nil {
		ts.value = &parsed
		return nil
	}
	for _, layout := range naiveLayouts {
		if parsed, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			ts.value = &parsed
			return nil
		}
	}
	ts.value = nil

	return nil
}

func firstNonEmpty(lists ...[]string) []string {
	for _, list := range lists {
		if len(list) > 0 {
			return list
		}
	}

	return nil
}

func (c candidatePayload) toDomain() domain.CandidateProfile {
	return domain.CandidateProfile{
		UserID:          domain.Token(c.UserID),
		DisplayName:     c.DisplayName,
		Bio:             c.Bio,
		RolePreferences: domain.Top(firstNonEmpty(c.RolePrefs, c.Roles), domain.MaxRolePreferences),
		Skills:          c.Skills,
		Availability:    c.Availability,
		LastActiveAt:    c.LastActiveAt.value,
		LastActiveLabel: c.LastActive,
		Score:           c.Score,
		Reasons:         c.Reasons,
	}
}

func (m memberPayload) toDomain() domain.Member {
	return domain.Member{
		UserID:          domain.Token(m.UserID),
		DisplayName:     m.DisplayName,
		RolePreferences: firstNonEmpty(m.RolePrefs, m.Roles),
		Skills:          m.Skills,
		Availability:    m.Availability,
		LastActiveAt:    m.LastActiveAt.value,
		ContactUnlocked: m.ContactUnlocked,
		Contact:         m.Contact.toDomain(),
	}
}

// toDomain classifies the payload. A pod counts as active exactly when it has
// an id and at least one member; the hasPod flag is not consulted. The leader
// is taken as stated, never inferred.
func (p podResponse) toDomain() (domain.GroupState, error) {
	if strings.TrimSpace(p.PodID) == "" || len(p.Members) == 0 {
		return domain.NoGroup{}, nil
	}

	leader := p.LeaderID
	if leader == "" {
		leader = p.LeaderUserID
	}

	members := make([]domain.Member, 0, len(p.Members))
	for _, member := range p.Members {
		members = append(members, member.toDomain())
	}

	unlocked := make([]domain.Token, 0, len(p.UnlockedContactIDs))
	for _, id := range p.UnlockedContactIDs {
		unlocked = append(unlocked, domain.Token(id))
	}

	hubLink := ""
	if p.HubLink != nil {
		hubLink = *p.HubLink
	}

	group, err := domain.NewActiveGroup(domain.ActiveGroupParams{
		GroupID:            p.PodID,
		CourseCode:         p.CourseCode,
		LeaderID:           domain.Token(leader),
		Members:            members,
		UnlockedContactIDs: unlocked,
		HubLink:            hubLink,
	})
	if err != nil {
		return nil, err
	}

	return group, nil
}

func (a askResponse) toDomain(question string) domain.AskExchange {
	links := make([]domain.Link, 0, len(a.Links))
	for _, link := range a.Links {
		links = append(links, link.link)
	}

	return domain.AskExchange{
		Question:     question,
		Answer:       a.Answer,
		RoutingLayer: int(a.Layer),
		Links:        links,
	}
}
