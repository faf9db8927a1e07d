package cmd

import (
	"github.com/spf13/cobra"

	"hireflow/internal/service"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage job postings",
}

var jobCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a job posting",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := newLogger()
		svc := newService(logger)

		flags := cmd.Flags()
		id, _ := flags.GetString("id")
		title, _ := flags.GetString("title")
		location, _ := flags.GetString("location")
		jobType, _ := flags.GetString("type")
		minSalary, _ := flags.GetInt("min-salary")
		maxSalary, _ := flags.GetInt("max-salary")
		skills, _ := flags.GetStringSlice("skills")
		minExperience, _ := flags.GetInt("min-experience")
		visaRequired, _ := flags.GetBool("visa-required")

		job, err := svc.CreateJob(service.JobParams{
			ID:                 id,
			Title:              title,
			Location:           location,
			JobType:            jobType,
			MinSalary:          minSalary,
			MaxSalary:          maxSalary,
			RequiredSkills:     skills,
			MinExperienceYears: minExperience,
			VisaRequired:       visaRequired,
		})
		if err != nil {
			fail(logger, "creating job", err)
		}

		printJSON(job)
	},
}

var jobEditCmd = &cobra.Command{
	Use:   "edit <job-id>",
	Short: "Edit an existing job posting",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		svc := newService(logger)

		// Only flags the caller actually set become part of the update.
		updates := map[string]any{}
		flags := cmd.Flags()
		if flags.Changed("title") {
			updates["title"], _ = flags.GetString("title")
		}
		if flags.Changed("location") {
			updates["location"], _ = flags.GetString("location")
		}
		if flags.Changed("type") {
			updates["job_type"], _ = flags.GetString("type")
		}
		if flags.Changed("min-salary") {
			updates["min_salary"], _ = flags.GetInt("min-salary")
		}
		if flags.Changed("max-salary") {
			updates["max_salary"], _ = flags.GetInt("max-salary")
		}
		if flags.Changed("skills") {
			skills, _ := flags.GetStringSlice("skills")
			updates["required_skills"] = skills
		}
		if flags.Changed("min-experience") {
			updates["min_experience_years"], _ = flags.GetInt("min-experience")
		}
		if flags.Changed("visa-required") {
			updates["visa_required"], _ = flags.GetBool("visa-required")
		}

		job, err := svc.EditJob(args[0], updates)
		if err != nil {
			fail(logger, "editing job", err)
		}

		printJSON(job)
	},
}

var jobSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search job postings by keyword, location and type",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := newLogger()
		svc := newService(logger)

		flags := cmd.Flags()
		keyword, _ := flags.GetString("keyword")
		location, _ := flags.GetString("location")
		jobType, _ := flags.GetString("type")

		jobs, err := svc.SearchJobs(keyword, location, jobType)
		if err != nil {
			fail(logger, "searching jobs", err)
		}

		printJSON(jobs)
	},
}

func init() {
	jobCreateCmd.Flags().String("id", "", "job identifier")
	jobCreateCmd.Flags().String("title", "", "job title")
	jobCreateCmd.Flags().String("location", "", "job location")
	jobCreateCmd.Flags().String("type", "", "job type (e.g. full_time, contract)")
	jobCreateCmd.Flags().Int("min-salary", 0, "minimum salary")
	jobCreateCmd.Flags().Int("max-salary", 0, "maximum salary")
	jobCreateCmd.Flags().StringSlice("skills", nil, "required skills (comma separated)")
	jobCreateCmd.Flags().Int("min-experience", 0, "minimum years of experience")
	jobCreateCmd.Flags().Bool("visa-required", false, "whether the job requires visa sponsorship eligibility")

	jobEditCmd.Flags().String("title", "", "job title")
	jobEditCmd.Flags().String("location", "", "job location")
	jobEditCmd.Flags().String("type", "", "job type")
	jobEditCmd.Flags().Int("min-salary", 0, "minimum salary")
	jobEditCmd.Flags().Int("max-salary", 0, "maximum salary")
	jobEditCmd.Flags().StringSlice("skills", nil, "required skills (comma separated)")
	jobEditCmd.Flags().Int("min-experience", 0, "minimum years of experience")
	jobEditCmd.Flags().Bool("visa-required", false, "whether the job requires visa sponsorship eligibility")

	jobSearchCmd.Flags().String("keyword", "", "keyword matched against job titles")
	jobSearchCmd.Flags().String("location", "", "location substring")
	jobSearchCmd.Flags().String("type", "", "exact job type")

	jobCmd.AddCommand(jobCreateCmd, jobEditCmd, jobSearchCmd)
	rootCmd.AddCommand(jobCmd)
}
