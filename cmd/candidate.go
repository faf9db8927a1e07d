package cmd

import (
	"github.com/spf13/cobra"

	"hireflow/internal/service"
)

var candidateCmd = &cobra.Command{
	Use:   "candidate",
	Short: "Manage candidate profiles",
}

var candidateCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a candidate profile",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := newLogger()
		svc := newService(logger)

		flags := cmd.Flags()
		id, _ := flags.GetString("id")
		name, _ := flags.GetString("name")
		email, _ := flags.GetString("email")
		phone, _ := flags.GetString("phone")
		location, _ := flags.GetString("location")
		years, _ := flags.GetInt("years")
		skills, _ := flags.GetStringSlice("skills")
		education, _ := flags.GetString("education")
		visa, _ := flags.GetString("visa-status")

		candidate, err := svc.CreateCandidate(service.CandidateParams{
			ID:              id,
			Name:            name,
			Email:           email,
			Phone:           phone,
			Location:        location,
			YearsExperience: years,
			Skills:          skills,
			EducationLevel:  education,
			VisaStatus:      visa,
		})
		if err != nil {
			fail(logger, "creating candidate", err)
		}

		printJSON(candidate)
	},
}

var candidateEditCmd = &cobra.Command{
	Use:   "edit <candidate-id>",
	Short: "Edit an existing candidate profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		svc := newService(logger)

		updates := map[string]any{}
		flags := cmd.Flags()
		if flags.Changed("name") {
			updates["name"], _ = flags.GetString("name")
		}
		if flags.Changed("email") {
			updates["email"], _ = flags.GetString("email")
		}
		if flags.Changed("phone") {
			updates["phone"], _ = flags.GetString("phone")
		}
		if flags.Changed("location") {
			updates["location"], _ = flags.GetString("location")
		}
		if flags.Changed("years") {
			updates["years_experience"], _ = flags.GetInt("years")
		}
		if flags.Changed("skills") {
			skills, _ := flags.GetStringSlice("skills")
			updates["skills"] = skills
		}
		if flags.Changed("education") {
			updates["education_level"], _ = flags.GetString("education")
		}
		if flags.Changed("visa-status") {
			updates["visa_status"], _ = flags.GetString("visa-status")
		}

		candidate, err := svc.UpdateCandidate(args[0], updates)
		if err != nil {
			fail(logger, "editing candidate", err)
		}

		printJSON(candidate)
	},
}

var candidateViewCmd = &cobra.Command{
	Use:   "view <candidate-id>",
	Short: "Show a candidate profile",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		svc := newService(logger)

		candidate, err := svc.GetCandidate(args[0])
		if err != nil {
			fail(logger, "viewing candidate", err)
		}

		printJSON(candidate)
	},
}

func init() {
	candidateCreateCmd.Flags().String("id", "", "candidate identifier")
	candidateCreateCmd.Flags().String("name", "", "full name")
	candidateCreateCmd.Flags().String("email", "", "email address")
	candidateCreateCmd.Flags().String("phone", "", "phone number")
	candidateCreateCmd.Flags().String("location", "", "location")
	candidateCreateCmd.Flags().Int("years", 0, "years of experience")
	candidateCreateCmd.Flags().StringSlice("skills", nil, "skills (comma separated)")
	candidateCreateCmd.Flags().String("education", "", "education level (phd/masters/bachelors/diploma)")
	candidateCreateCmd.Flags().String("visa-status", "", "visa status (no_sponsorship/needs_sponsorship/citizen/...)")

	candidateEditCmd.Flags().String("name", "", "full name")
	candidateEditCmd.Flags().String("email", "", "email address")
	candidateEditCmd.Flags().String("phone", "", "phone number")
	candidateEditCmd.Flags().String("location", "", "location")
	candidateEditCmd.Flags().Int("years", 0, "years of experience")
	candidateEditCmd.Flags().StringSlice("skills", nil, "skills (comma separated)")
	candidateEditCmd.Flags().String("education", "", "education level")
	candidateEditCmd.Flags().String("visa-status", "", "visa status")

	candidateCmd.AddCommand(candidateCreateCmd, candidateEditCmd, candidateViewCmd)
	rootCmd.AddCommand(candidateCmd)
}
