package cmd

import (
	"github.com/spf13/cobra"
)

var applicationCmd = &cobra.Command{
	Use:   "application",
	Short: "Manage applications and their lifecycle",
}

var applicationSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit an application for a candidate against a job",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := newLogger()
		svc := newService(logger)

		flags := cmd.Flags()
		id, _ := flags.GetString("id")
		jobID, _ := flags.GetString("job")
		candidateID, _ := flags.GetString("candidate")

		app, err := svc.SubmitApplication(id, jobID, candidateID)
		if err != nil {
			fail(logger, "submitting application", err)
		}

		printJSON(app)
	},
}

var applicationWithdrawCmd = &cobra.Command{
	Use:   "withdraw <application-id>",
	Short: "Withdraw an application",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		svc := newService(logger)

		app, err := svc.WithdrawApplication(args[0])
		if err != nil {
			fail(logger, "withdrawing application", err)
		}

		printJSON(app)
	},
}

var applicationStatusCmd = &cobra.Command{
	Use:   "status <application-id>",
	Short: "Show an application's status and audit trail",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		svc := newService(logger)

		view, err := svc.ApplicationStatus(args[0])
		if err != nil {
			fail(logger, "getting application status", err)
		}

		printJSON(view)
	},
}

var applicationAdvanceCmd = &cobra.Command{
	Use:   "advance <application-id>",
	Short: "Advance an application to a new status",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		svc := newService(logger)

		flags := cmd.Flags()
		status, _ := flags.GetString("status")
		reason, _ := flags.GetString("reason")

		app, err := svc.AdvanceApplication(args[0], status, reason)
		if err != nil {
			fail(logger, "advancing application", err)
		}

		printJSON(app)
	},
}

var applicationListCmd = &cobra.Command{
	Use:   "list <job-id>",
	Short: "List all applications for a job",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		svc := newService(logger)

		apps, err := svc.ListApplicationsForJob(args[0])
		if err != nil {
			fail(logger, "listing applications", err)
		}

		printJSON(apps)
	},
}

func init() {
	applicationSubmitCmd.Flags().String("id", "", "application identifier")
	applicationSubmitCmd.Flags().String("job", "", "job identifier")
	applicationSubmitCmd.Flags().String("candidate", "", "candidate identifier")

	applicationAdvanceCmd.Flags().String("status", "", "target status (screened/shortlisted/rejected/interview_scheduled)")
	applicationAdvanceCmd.Flags().String("reason", "", "reason recorded in the audit trail")

	applicationCmd.AddCommand(
		applicationSubmitCmd,
		applicationWithdrawCmd,
		applicationStatusCmd,
		applicationAdvanceCmd,
		applicationListCmd,
	)
	rootCmd.AddCommand(applicationCmd)
}
