package ports

import (
	"context"

	"github.com/bnema/coursecupid-cli/internal/domain"
)

// MatchService is the remote matching service as seen by the client.
type MatchService interface {
	JoinCourse(ctx context.Context, courseCode, displayName string) (domain.Enrollment, error)
	Course(ctx context.Context, courseCode string) (domain.CourseInfo, error)
	UserCourses(ctx context.Context) (domain.UserCourses, error)
	AddCourse(ctx context.Context, courseCode string) error
	UpsertProfile(ctx context.Context, userID domain.Token, profile domain.Profile) error
	Recommendations(ctx context.Context, courseCode string, mode domain.MatchMode) ([]domain.CandidateProfile, error)
	Swipe(ctx context.Context, req domain.SwipeRequest) (domain.SwipeResult, error)
	Pod(ctx context.Context, courseCode string) (domain.GroupState, error)
	SetHub(ctx context.Context, courseCode string, userID domain.Token, hubLink string) error
	Heartbeat(ctx context.Context, courseCode string, userID domain.Token) error
	Ask(ctx context.Context, courseCode, question string, token domain.Token) (domain.AskExchange, error)
	CreateTicket(ctx context.Context, courseCode string, userID domain.Token, question string) (domain.Ticket, error)
	Health(ctx context.Context) (domain.HealthStatus, error)
}
