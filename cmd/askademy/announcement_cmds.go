package main

import (
	"fmt"

	"github.com/askademy/client-go"
	"github.com/spf13/cobra"
)

func newAnnouncementsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "announcements",
		Short: "Browse and post course announcements",
	}

	cmd.AddCommand(
		newAnnouncementsListCmd(app),
		newAnnouncementsPostCmd(app),
		newAnnouncementsDeleteCmd(app),
	)

	return cmd
}

func newAnnouncementsListCmd(app *App) *cobra.Command {
	var courseID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a course's announcements",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewCourse); err != nil {
				return err
			}

			announcements, err := app.client.Announcements().ListByCourse(cmd.Context(), courseID)
			if err != nil {
				return err
			}

			for _, announcement := range announcements {
				fmt.Printf("%4d  %s (%s)\n",
					announcement.ID, announcement.Title, announcement.Professor.DisplayName())
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&courseID, "course", 0, "course id")
	_ = cmd.MarkFlagRequired("course")

	return cmd
}

func newAnnouncementsPostCmd(app *App) *cobra.Command {
	var courseID int64
	input := askademy.CreateAnnouncementInput{}

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post an announcement (professors only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewCourse); err != nil {
				return err
			}

			announcement, err := app.client.Announcements().Create(cmd.Context(), courseID, input)
			if err != nil {
				return err
			}
			fmt.Printf("Posted announcement %d\n", announcement.ID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&courseID, "course", 0, "course id")
	cmd.Flags().StringVarP(&input.Title, "title", "t", "", "announcement title")
	cmd.Flags().StringVarP(&input.Content, "content", "c", "", "announcement body")
	_ = cmd.MarkFlagRequired("course")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newAnnouncementsDeleteCmd(app *App) *cobra.Command {
	var courseID, announcementID int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an announcement (professors only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewCourse); err != nil {
				return err
			}

			if err := app.client.Announcements().Delete(cmd.Context(), courseID, announcementID); err != nil {
				return err
			}
			fmt.Println("Announcement deleted.")
			return nil
		},
	}

	cmd.Flags().Int64Var(&courseID, "course", 0, "course id")
	cmd.Flags().Int64Var(&announcementID, "announcement", 0, "announcement id")
	_ = cmd.MarkFlagRequired("course")
	_ = cmd.MarkFlagRequired("announcement")

	return cmd
}
