package main

import (
	"fmt"

	"github.com/askademy/client-go"
	"github.com/spf13/cobra"
)

func newCoursesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Browse and manage courses",
	}

	cmd.AddCommand(
		newCoursesListCmd(app),
		newCoursesCreateCmd(app),
		newCoursesEnrollCmd(app),
		newCoursesGradingCmd(app),
		newCoursesDeleteCmd(app),
	)

	return cmd
}

func newCoursesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewDashboard); err != nil {
				return err
			}

			identity := app.identity()
			var (
				courses []askademy.Course
				err     error
			)
			switch {
			case identity.Is(askademy.RoleProfessor):
				courses, err = app.client.Courses().ProfessorCourses(cmd.Context())
			case identity.Is(askademy.RoleStudent):
				courses, err = app.client.Courses().StudentCourses(cmd.Context())
			default:
				courses, err = app.client.Courses().List(cmd.Context())
			}
			if err != nil {
				return err
			}

			for _, course := range courses {
				line := fmt.Sprintf("%4d  %-8s  %s", course.ID, course.CourseCode, course.Name)
				if askademy.CanManageCourse(identity, &course) {
					line += "  [manage]"
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func newCoursesCreateCmd(app *App) *cobra.Command {
	input := askademy.CreateCourseInput{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a course (professors only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewDashboard); err != nil {
				return err
			}

			course, err := app.client.Courses().Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Printf("Created course %d (%s) with code %s\n", course.ID, course.Name, course.CourseCode)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input.Name, "name", "n", "", "course name")
	cmd.Flags().StringVarP(&input.Description, "description", "d", "", "course description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCoursesEnrollCmd(app *App) *cobra.Command {
	var courseID int64
	var code string

	cmd := &cobra.Command{
		Use:   "enroll",
		Short: "Enroll in a course by id or course code",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewDashboard); err != nil {
				return err
			}

			var err error
			switch {
			case code != "":
				err = app.client.Courses().EnrollByCode(cmd.Context(), code)
			case courseID > 0:
				err = app.client.Courses().Enroll(cmd.Context(), courseID)
			default:
				return fmt.Errorf("provide --course or --code")
			}
			if err != nil {
				return err
			}
			fmt.Println("Enrolled.")
			return nil
		},
	}

	cmd.Flags().Int64Var(&courseID, "course", 0, "course id")
	cmd.Flags().StringVar(&code, "code", "", "8-character course code")

	return cmd
}

func newCoursesGradingCmd(app *App) *cobra.Command {
	var courseID int64
	var info string

	cmd := &cobra.Command{
		Use:   "grading",
		Short: "Update a course's grading guide (professors only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewCourse); err != nil {
				return err
			}

			if err := app.client.Courses().UpdateGradingInfo(cmd.Context(), courseID, info); err != nil {
				return err
			}
			fmt.Println("Grading guide updated.")
			return nil
		},
	}

	cmd.Flags().Int64Var(&courseID, "course", 0, "course id")
	cmd.Flags().StringVar(&info, "info", "", "grading guide text")
	_ = cmd.MarkFlagRequired("course")
	_ = cmd.MarkFlagRequired("info")

	return cmd
}

func newCoursesDeleteCmd(app *App) *cobra.Command {
	var courseID int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a course (professors only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewCourse); err != nil {
				return err
			}

			if err := app.client.Courses().Delete(cmd.Context(), courseID); err != nil {
				return err
			}
			fmt.Println("Course deleted.")
			return nil
		},
	}

	cmd.Flags().Int64Var(&courseID, "course", 0, "course id")
	_ = cmd.MarkFlagRequired("course")

	return cmd
}
