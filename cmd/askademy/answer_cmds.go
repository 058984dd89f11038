package main

import (
	"fmt"

	"github.com/askademy/client-go"
	"github.com/spf13/cobra"
)

func newAnswersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "answers",
		Short: "Browse, post, and verify answers",
	}

	cmd.AddCommand(
		newAnswersListCmd(app),
		newAnswersPostCmd(app),
		newAnswersBatchCmd(app),
		newAnswersVerifyCmd(app),
		newAnswersDeleteCmd(app),
	)

	return cmd
}

func newAnswersListCmd(app *App) *cobra.Command {
	var questionID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a question's answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewCourse); err != nil {
				return err
			}

			answers, err := app.client.Answers().ListByQuestion(cmd.Context(), questionID)
			if err != nil {
				return err
			}

			identity := app.identity()
			for _, answer := range answers {
				marker := " "
				if answer.Verified {
					marker = "✓"
				}
				line := fmt.Sprintf("%4d %s %s  by %s", answer.ID, marker, answer.Content, answer.Author.DisplayName())
				if askademy.CanDeleteAnswer(identity, &answer) {
					line += "  [deletable]"
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&questionID, "question", 0, "question id")
	_ = cmd.MarkFlagRequired("question")

	return cmd
}

func newAnswersPostCmd(app *App) *cobra.Command {
	input := askademy.CreateAnswerInput{}

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post an answer to a question",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewCourse); err != nil {
				return err
			}

			answer, err := app.client.Answers().Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Printf("Posted answer %d\n", answer.ID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&input.QuestionID, "question", 0, "question id")
	cmd.Flags().StringVarP(&input.Content, "content", "c", "", "answer body")
	cmd.Flags().BoolVar(&input.Anonymous, "anonymous", false, "post anonymously")
	_ = cmd.MarkFlagRequired("question")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newAnswersBatchCmd(app *App) *cobra.Command {
	input := askademy.BatchAnswerInput{}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Answer every question in a similarity group at once",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewCourse); err != nil {
				return err
			}

			answers, err := app.client.Answers().CreateBatch(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Printf("Posted %d answers\n", len(answers))
			return nil
		},
	}

	cmd.Flags().Int64SliceVar(&input.QuestionIDs, "questions", nil, "question ids")
	cmd.Flags().StringVarP(&input.Content, "content", "c", "", "answer body")
	cmd.Flags().BoolVar(&input.AutoVerify, "auto-verify", true, "verify the answers as they are posted")
	cmd.Flags().BoolVar(&input.Anonymous, "anonymous", false, "post anonymously")
	_ = cmd.MarkFlagRequired("questions")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newAnswersVerifyCmd(app *App) *cobra.Command {
	var answerID int64

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Mark an answer as verified (professors only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewCourse); err != nil {
				return err
			}

			if !askademy.CanVerifyAnswer(app.identity()) {
				return askademy.ErrPermissionDenied
			}

			if err := app.client.Answers().Verify(cmd.Context(), answerID); err != nil {
				return err
			}
			fmt.Println("Answer verified.")
			return nil
		},
	}

	cmd.Flags().Int64Var(&answerID, "answer", 0, "answer id")
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}

func newAnswersDeleteCmd(app *App) *cobra.Command {
	var answerID int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an answer you authored (or moderate)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireView(viewCourse); err != nil {
				return err
			}

			if err := app.client.Answers().Delete(cmd.Context(), answerID); err != nil {
				return err
			}
			fmt.Println("Answer deleted.")
			return nil
		},
	}

	cmd.Flags().Int64Var(&answerID, "answer", 0, "answer id")
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}
