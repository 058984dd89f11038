package main

import (
	"fmt"

	"github.com/askademy/client-go"
	"github.com/spf13/cobra"
)

func newQuestionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Browse and post course questions",
	}

	cmd.AddCommand(
		newQuestionsListCmd(app),
		newQuestionsGroupedCmd(app),
		newQuestionsAskCmd(app),
		newQuestionsDeleteCmd(app),
	)

	return cmd
}

func newQuestionsListCmd(app *App) *cobra.Command {
	var courseID int64
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a course's questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewCourse); err != nil {
				return err
			}

			questions, err := app.client.Questions().ListByCourse(cmd.Context(), courseID, filter)
			if err != nil {
				return err
			}

			identity := app.identity()
			for _, question := range questions {
				line := fmt.Sprintf("%4d  %-40s  by %s (%d answers)",
					question.ID, question.Title, question.Author.DisplayName(), len(question.Answers))
				if askademy.CanDeleteQuestion(identity, &question) {
					line += "  [deletable]"
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&courseID, "course", 0, "course id")
	cmd.Flags().StringVar(&filter, "filter", "", "filter (answered, unanswered)")
	_ = cmd.MarkFlagRequired("course")

	return cmd
}

func newQuestionsGroupedCmd(app *App) *cobra.Command {
	var courseID int64
	var threshold float64

	cmd := &cobra.Command{
		Use:   "grouped",
		Short: "List questions clustered by similarity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewCourse); err != nil {
				return err
			}

			groups, err := app.client.Questions().Grouped(cmd.Context(), courseID, threshold)
			if err != nil {
				return err
			}

			for _, group := range groups {
				fmt.Printf("%4d  %s (+%d similar)\n",
					group.MainQuestion.ID, group.MainQuestion.Title, group.TotalSimilar)
				for _, similar := range group.SimilarQuestions {
					fmt.Printf("      ~ %s (%.0f%%)\n",
						similar.Question.Title, similar.SimilarityScore*100)
				}
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&courseID, "course", 0, "course id")
	cmd.Flags().Float64Var(&threshold, "threshold", 0.3, "similarity threshold")
	_ = cmd.MarkFlagRequired("course")

	return cmd
}

func newQuestionsAskCmd(app *App) *cobra.Command {
	input := askademy.CreateQuestionInput{}

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Post a question to a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewCourse); err != nil {
				return err
			}

			question, err := app.client.Questions().Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Printf("Posted question %d\n", question.ID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&input.CourseID, "course", 0, "course id")
	cmd.Flags().StringVarP(&input.Title, "title", "t", "", "question title")
	cmd.Flags().StringVarP(&input.Content, "content", "c", "", "question body")
	cmd.Flags().BoolVar(&input.Anonymous, "anonymous", false, "post anonymously")
	_ = cmd.MarkFlagRequired("course")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newQuestionsDeleteCmd(app *App) *cobra.Command {
	var questionID int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a question you authored (or moderate)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewCourse); err != nil {
				return err
			}

			if err := app.client.Questions().Delete(cmd.Context(), questionID); err != nil {
				return err
			}
			fmt.Println("Question deleted.")
			return nil
		},
	}

	cmd.Flags().Int64Var(&questionID, "question", 0, "question id")
	_ = cmd.MarkFlagRequired("question")

	return cmd
}
