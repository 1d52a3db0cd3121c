package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/coursecupid-cli/internal/application"
	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newJoinCmd(app *app) *cobra.Command {
	var displayName string

	cmd := &cobra.Command{
		Use:   "join [course]",
		Short: "Join a course and start a session",
		Long:  "Join a course by code (case-insensitive). Without a code, the course of the last join that could not reach the service is retried.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := application.JoinCommand{DisplayName: displayName}
			if len(args) == 1 {
				command.CourseCode = args[0]
			}

			var identity domain.Identity
			err := withSpinner(cmd.Context(), cmd.ErrOrStderr(), "Joining course...", false, func(ctx context.Context) error {
				var err error
				identity, err = app.sessions.Join(ctx, command)
				return err
			})
			if err != nil {
				if errors.Is(err, domain.ErrServiceUnreachable) {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Course remembered; run `cupid join` once the service is back.")
				}
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Joined %s as %s\nNext: `cupid profile set --role <role>`\n", identity.CourseCode, identity.UserID)
			return err
		},
	}

	cmd.Flags().StringVar(&displayName, "name", "", "Display name shown to classmates")

	return cmd
}

func newResetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.sessions.Reset(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Session cleared.")
			return err
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.guard.Check(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Purged {
				_, _ = fmt.Fprintln(out, "The stored session was malformed and has been cleared.")
			}
			if result.Decision != application.GuardAllow {
				if pending, ok, err := app.prefs.PendingCourse(cmd.Context()); err == nil && ok {
					_, _ = fmt.Fprintf(out, "Pending course: %s\n", pending)
				}
				return fmt.Errorf("%w: not joined", domain.ErrNoSession)
			}

			identity := result.Identity
			_, _ = fmt.Fprintf(out, "user:   %s\n", identity.UserID)
			_, _ = fmt.Fprintf(out, "course: %s\n", identity.CourseCode)
			if identity.DisplayName != "" {
				_, _ = fmt.Fprintf(out, "name:   %s\n", identity.DisplayName)
			}
			return nil
		},
	}
}

func newSwitchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <course>",
		Short: "Add another course and make it current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := app.sessions.SwitchCourse(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Current course: %s\n", identity.CourseCode)
			return err
		},
	}
}

func newCoursesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List the courses of this account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			courses, err := app.sessions.Courses(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), courses)
			}

			current := ""
			if result, err := app.guard.Check(cmd.Context()); err == nil {
				current = result.Identity.CourseCode
			}

			names := make(map[string]string, len(courses.Courses))
			for _, course := range courses.Courses {
				names[course.CourseCode] = course.CourseName
			}
			for _, code := range courseCodes(courses) {
				marker := " "
				if code == current {
					marker = "*"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", marker, code, names[code])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func courseCodes(courses domain.UserCourses) []string {
	seen := map[string]struct{}{}
	codes := make([]string, 0, len(courses.CourseCodes)+len(courses.Courses))
	add := func(code string) {
		if _, ok := seen[code]; ok || code == "" {
			return
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	for _, code := range courses.CourseCodes {
		add(code)
	}
	for _, course := range courses.Courses {
		add(course.CourseCode)
	}
	return codes
}

func newCourseCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "course [code]",
		Short: "Show course details",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := ""
			if len(args) == 1 {
				code = args[0]
			}

			info, err := app.sessions.Course(cmd.Context(), code)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), info)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s %s\n", info.CourseCode, info.CourseName)
			for _, field := range []struct{ label, value string }{
				{"Professor", info.Professor},
				{"Location", info.Location},
				{"Office hours", info.OfficeHours},
				{"Class policy", info.ClassPolicy},
				{"Late policy", info.LatePolicy},
			} {
				if strings.TrimSpace(field.value) != "" {
					_, _ = fmt.Fprintf(out, "%s: %s\n", field.label, field.value)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newHealthCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the matching service is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.sessions.Health(cmd.Context())
			if err != nil {
				return err
			}

			state := "ok"
			if !status.OK {
				state = "degraded"
			}
			line := fmt.Sprintf("%s (%s)", state, app.cfg.BaseURL)
			if status.Database != "" {
				line += " database: " + status.Database
			}
			if status.Error != "" {
				line += " error: " + status.Error
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}
}
