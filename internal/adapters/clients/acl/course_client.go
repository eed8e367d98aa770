package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	aclcourse "github.com/jsamuelsen11/exercise-kit/internal/adapters/clients/acl/course"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/httpclient"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

var (
	_ ports.CourseGenerator = (*CourseClient)(nil)
	_ ports.HealthChecker   = (*CourseClient)(nil)
)

const generatePath = "/api/v1/courses:generate"

// CourseClient generates courses through the remote course API. Wire shapes
// are translated by [aclcourse]; the [httpclient.Client] underneath adds
// circuit breaking, retries, rate limiting and tracing.
type CourseClient struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewCourseClient returns a CourseClient whose client BaseURL points at the
// course API root.
func NewCourseClient(client *httpclient.Client, logger *slog.Logger) *CourseClient {
	return &CourseClient{client: client, logger: logger}
}

// Generate posts req to /api/v1/courses:generate.
func (c *CourseClient) Generate(ctx context.Context, req course.Request) (*course.Course, error) {
	dto, err := exchange[aclcourse.CourseDTO](ctx, c.client, c.logger, call{
		method: http.MethodPost,
		path:   generatePath,
		want:   http.StatusOK,
		in:     aclcourse.ToGenerateRequest(req),
	})
	if err != nil {
		return nil, err
	}

	out, err := aclcourse.ToDomainCourse(&dto)
	if err != nil {
		c.logger.WarnContext(ctx, "discarding malformed generated course",
			slog.String("topic", req.Topic),
			slog.Any("error", err))
		return nil, fmt.Errorf("translating generated course: %w", err)
	}
	return out, nil
}

// Name keys the client in the health registry and labels its generations
// in course metrics.
func (c *CourseClient) Name() string { return "course-api" }

// HealthCheck reads the circuit breaker; it makes no network call. The
// service keeps serving template and saved courses while this fails.
func (c *CourseClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
