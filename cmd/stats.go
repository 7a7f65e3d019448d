package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a learner's activity and the class catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()

		email, _ := cmd.Flags().GetString("email")
		if email != "" {
			user, err := st.GetUserByEmail(ctx, email)
			if err != nil {
				return fmt.Errorf("lookup user: %w", err)
			}
			fmt.Printf("%s — %d points\n\n", user.DisplayName, user.Points)

			summaries, err := st.ActivitySummaries(ctx, user.ID)
			if err != nil {
				return fmt.Errorf("load activity: %w", err)
			}
			if len(summaries) == 0 {
				fmt.Println("No activity yet.")
			}
			for _, s := range summaries {
				fmt.Printf("  %-16s %4d times  %6d pts\n", s.ActivityType, s.Count, s.TotalPoints)
			}
			fmt.Println()
		}

		cats, err := st.ListCategoriesWithLessons(ctx)
		if err != nil {
			return fmt.Errorf("load classes: %w", err)
		}
		if len(cats) == 0 {
			return nil
		}
		fmt.Println("Class catalog:")
		for _, cat := range cats {
			fmt.Printf("  %s (%d lessons, %d videos)\n", cat.Name, len(cat.Lessons), len(cat.Videos))
			for _, lesson := range cat.Lessons {
				fmt.Printf("    - %s (%d class, %d practice audios)\n",
					lesson.Title, len(lesson.ClassAudios), len(lesson.PracticeAudios))
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("email", "", "Learner account to summarize")
}
