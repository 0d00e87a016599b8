package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"studyhall/internal/bootstrap"
	"studyhall/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "studyhall",
		Short:         "Terminal client for the StudyHall learning service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "config and credentials directory (default ~/.config/studyhall)")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newLoginCmd(&dataDir))
	root.AddCommand(newRegisterCmd(&dataDir))
	root.AddCommand(newWhoamiCmd(&dataDir))
	root.AddCommand(newLogoutCmd(&dataDir))
	root.AddCommand(newNotesCmd(&dataDir))
	root.AddCommand(newCardsCmd(&dataDir))
	root.AddCommand(newQuizCmd(&dataDir))
	root.AddCommand(newChatCmd(&dataDir))
	root.AddCommand(newSummaryCmd(&dataDir))
	root.AddCommand(newDashboardCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	if dataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		dataDir = filepath.Join(base, "studyhall")
	}
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the studyhall terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app)
		},
	}
}

func newLoginCmd(dataDir *string) *cobra.Command {
	var email, password string
	login := &cobra.Command{
		Use:   "login --email <email>",
		Short: "Log in and store credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(email) == "" {
				return fmt.Errorf("--email is required")
			}
			if password == "" {
				var err error
				if password, err = promptLine(cmd, "password: "); err != nil {
					return err
				}
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			user, err := app.AuthCLI.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
	login.Flags().StringVar(&email, "email", "", "account email")
	login.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return login
}

func newRegisterCmd(dataDir *string) *cobra.Command {
	var name, email, password string
	register := &cobra.Command{
		Use:   "register --name <name> --email <email>",
		Short: "Create an account and store credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
				return fmt.Errorf("--name and --email are required")
			}
			if password == "" {
				var err error
				if password, err = promptLine(cmd, "password: "); err != nil {
					return err
				}
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			user, err := app.AuthCLI.Register(context.Background(), name, email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "account created: %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
	register.Flags().StringVar(&name, "name", "", "display name")
	register.Flags().StringVar(&email, "email", "", "account email")
	register.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return register
}

func newWhoamiCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			user, err := app.AuthCLI.Whoami(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
}

func newLogoutCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard stored credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.AuthCLI.Logout(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newNotesCmd(dataDir *string) *cobra.Command {
	notes := &cobra.Command{Use: "notes", Short: "Manage uploaded notes"}

	notes.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			items, err := app.NotesCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no notes")
				return nil
			}
			for _, note := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					note.ID, note.CreatedAt.Format("2006-01-02"), note.Subject, note.Title)
			}
			return nil
		},
	})

	var showID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show a note's content",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(showID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			note, err := app.NotesCLI.Get(context.Background(), showID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "title: %s\nsubject: %s\ntags: %s\nadded: %s\n",
				note.Title, note.Subject, strings.Join(note.Tags, ", "), note.CreatedAt.Format("2006-01-02 15:04"))
			if note.WordCount > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "words: %d pages: %d\n", note.WordCount, note.PageCount)
			}
			if note.Content != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "\n"+note.Content)
			}
			return nil
		},
	}
	show.Flags().StringVar(&showID, "id", "", "note id")
	notes.AddCommand(show)

	var title, subject, tags, file, content string
	upload := &cobra.Command{
		Use:   "upload --title <title> [--file <path> | --content <text>]",
		Short: "Upload a note from a file or pasted text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.NotesCLI.Upload(context.Background(), title, subject, tags, file, content)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s (%s)", out.Note.Title, out.Note.ID)
			if out.Pages > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), " pages=%d", out.Pages)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	upload.Flags().StringVar(&title, "title", "", "note title")
	upload.Flags().StringVar(&subject, "subject", "", "subject label")
	upload.Flags().StringVar(&tags, "tags", "", "comma-separated tags")
	upload.Flags().StringVar(&file, "file", "", "path to a pdf, docx, txt, or md file")
	upload.Flags().StringVar(&content, "content", "", "inline note text")
	notes.AddCommand(upload)

	var deleteID string
	remove := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deleteID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.NotesCLI.Delete(context.Background(), deleteID); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "deleted "+deleteID)
			return nil
		},
	}
	remove.Flags().StringVar(&deleteID, "id", "", "note id")
	notes.AddCommand(remove)

	return notes
}

func newCardsCmd(dataDir *string) *cobra.Command {
	cards := &cobra.Command{Use: "cards", Aliases: []string{"flashcards"}, Short: "Flashcard operations"}

	var listNoteID string
	list := &cobra.Command{
		Use:   "list --note-id <id>",
		Short: "List a note's flashcards",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(listNoteID) == "" {
				return fmt.Errorf("--note-id is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.AssessCLI.LoadFlashcards(context.Background(), listNoteID)
			if err != nil {
				return err
			}
			if out.Total == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no flashcards; run cards generate")
				return nil
			}
			printCards(cmd, app, out.Total)
			return nil
		},
	}
	list.Flags().StringVar(&listNoteID, "note-id", "", "note id")
	cards.AddCommand(list)

	var genNoteID string
	var genCount int
	generate := &cobra.Command{
		Use:   "generate --note-id <id>",
		Short: "Generate flashcards for a note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(genNoteID) == "" {
				return fmt.Errorf("--note-id is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.AssessCLI.GenerateFlashcards(context.Background(), genNoteID, genCount)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "generated %d flashcards\n", out.Total)
			printCards(cmd, app, out.Total)
			return nil
		},
	}
	generate.Flags().StringVar(&genNoteID, "note-id", "", "note id")
	generate.Flags().IntVar(&genCount, "count", 10, "cards to generate")
	cards.AddCommand(generate)

	return cards
}

// printCards walks the freshly loaded session and prints each card front.
func printCards(cmd *cobra.Command, app *bootstrap.App, total int) {
	for index := 0; index < total; index++ {
		out, err := app.AssessCLI.JumpTo(index)
		if err != nil || out.Card == nil {
			return
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\n", index+1, out.Card.Prompt)
	}
}

func newQuizCmd(dataDir *string) *cobra.Command {
	quiz := &cobra.Command{Use: "quiz", Short: "Quiz operations"}

	var noteID string
	var count int
	take := &cobra.Command{
		Use:   "take --note-id <id>",
		Short: "Generate a quiz, answer it interactively, and submit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(noteID) == "" {
				return fmt.Errorf("--note-id is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.AssessCLI.GenerateQuiz(context.Background(), noteID, count)
			if err != nil {
				return err
			}
			answers := make([]int, 0, out.Total)
			for index := 0; index < out.Total; index++ {
				view, err := app.AssessCLI.JumpTo(index)
				if err != nil || view.Question == nil {
					return fmt.Errorf("read question %d: %w", index+1, err)
				}
				question := view.Question
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%d. %s\n", index+1, question.Prompt)
				for choiceIdx, choice := range question.Choices {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "   %d) %s\n", choiceIdx+1, choice)
				}
				choice, err := promptChoice(cmd, len(question.Choices))
				if err != nil {
					return err
				}
				answers = append(answers, choice)
			}
			result, err := app.AssessCLI.SubmitAnswers(context.Background(), answers)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nscore: %.0f%%  %d/%d correct  time: %d:%02d\n",
				result.Score, result.CorrectCount, result.TotalQuestions,
				result.ElapsedSeconds/60, result.ElapsedSeconds%60)
			for index, question := range result.Questions {
				mark := "✗"
				if question.Correct {
					mark = "✓"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d. %s\n", mark, index+1, question.Prompt)
				if !question.Correct && question.CorrectChoice >= 0 && question.CorrectChoice < len(question.Choices) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "   correct: %s\n", question.Choices[question.CorrectChoice])
				}
				if question.Explanation != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "   %s\n", question.Explanation)
				}
			}
			return nil
		},
	}
	take.Flags().StringVar(&noteID, "note-id", "", "note id")
	take.Flags().IntVar(&count, "count", 5, "questions to generate")
	quiz.AddCommand(take)

	return quiz
}

func newChatCmd(dataDir *string) *cobra.Command {
	chat := &cobra.Command{Use: "chat", Short: "Ask questions about a note"}

	var noteID string
	ask := &cobra.Command{
		Use:   "ask --note-id <id> <question...>",
		Short: "Ask one question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(noteID) == "" {
				return fmt.Errorf("--note-id is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.ChatCLI.Ask(context.Background(), noteID, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if len(out.Messages) > 0 {
				last := out.Messages[len(out.Messages)-1]
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), last.Content)
			}
			return nil
		},
	}
	ask.Flags().StringVar(&noteID, "note-id", "", "note id")
	chat.AddCommand(ask)

	return chat
}

func newSummaryCmd(dataDir *string) *cobra.Command {
	var noteID string
	summary := &cobra.Command{
		Use:   "summary --note-id <id>",
		Short: "Show a note's generated summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(noteID) == "" {
				return fmt.Errorf("--note-id is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SummaryCLI.Get(context.Background(), noteID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Plaintext())
			return nil
		},
	}
	summary.Flags().StringVar(&noteID, "note-id", "", "note id")
	return summary
}

func newDashboardCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show study stats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.DashboardCLI.Overview(context.Background())
			if err != nil {
				return err
			}
			stats := out.Stats
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "notes: %d\nmastered: %d/%d\nquizzes: %d\nweek: %d min\n",
				stats.NotesUploaded, stats.FlashcardsMastered, stats.FlashcardsTotal,
				stats.QuizzesTaken, stats.WeekStudyMinutes)
			for _, day := range out.Analytics.DailyStudy {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %d min\n", day.Day, day.Minutes)
			}
			return nil
		},
	}
}

// ─── prompts ─────────────────────────────────────────────────────────────────

func promptLine(cmd *cobra.Command, label string) (string, error) {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), label)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func promptChoice(cmd *cobra.Command, choices int) (int, error) {
	reader := bufio.NewReader(cmd.InOrStdin())
	for {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "answer (1-%d): ", choices)
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("read answer: %w", err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= choices {
			return n - 1, nil
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "pick a number in range")
	}
}
