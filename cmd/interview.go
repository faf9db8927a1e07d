package cmd

import (
	"github.com/spf13/cobra"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Schedule interviews for shortlisted applications",
}

var interviewScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule an interview",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := newLogger()
		svc := newService(logger)

		flags := cmd.Flags()
		id, _ := flags.GetString("id")
		applicationID, _ := flags.GetString("application")
		startTime, _ := flags.GetString("time")
		duration, _ := flags.GetInt("duration")
		interviewer, _ := flags.GetString("interviewer")
		location, _ := flags.GetString("location")

		interview, err := svc.ScheduleInterview(id, applicationID, startTime, duration, interviewer, location)
		if err != nil {
			fail(logger, "scheduling interview", err)
		}

		printJSON(interview)
	},
}

func init() {
	interviewScheduleCmd.Flags().String("id", "", "interview identifier")
	interviewScheduleCmd.Flags().String("application", "", "application identifier (must be shortlisted)")
	interviewScheduleCmd.Flags().String("time", "", "start time (RFC 3339 or YYYY-MM-DDTHH:MM:SS)")
	interviewScheduleCmd.Flags().Int("duration", 60, "duration in minutes (1-240)")
	interviewScheduleCmd.Flags().String("interviewer", "", "interviewer name")
	interviewScheduleCmd.Flags().String("location", "", "location (defaults to online)")

	interviewCmd.AddCommand(interviewScheduleCmd)
	rootCmd.AddCommand(interviewCmd)
}
