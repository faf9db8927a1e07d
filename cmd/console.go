package cmd

import (
	"errors"
	"strconv"
	"strings"

	"hireflow/internal/service"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptSearchJobs        = "Search jobs"
	PromptApplicationStatus = "Show application status"
	PromptListApplications  = "List applications for a job"
	PromptEligibility       = "Screen candidates for a job"
	PromptRankCandidates    = "Rank candidates for a job"
	PromptScheduleInterview = "Schedule an interview"
	PromptExit              = "Exit"
)

var errExit = errors.New("exit requested")

var menu = promptui.Select{
	Label: "Choose an action and press ENTER",
	Items: []string{
		PromptSearchJobs,
		PromptApplicationStatus,
		PromptListApplications,
		PromptEligibility,
		PromptRankCandidates,
		PromptScheduleInterview,
		PromptExit,
	},
}

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run an interactive console against the data file",
	Run: func(_ *cobra.Command, _ []string) {
		logger := newLogger()
		svc := newService(logger)

		for {
			_, action, err := menu.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}

			if err := handleAction(action, svc, logger); err != nil {
				if errors.Is(err, errExit) {
					return
				}
				logger.Error("action failed", zap.Error(err))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func handleAction(action string, svc *service.Service, logger *zap.Logger) error {
	switch action {
	case PromptSearchJobs:
		keyword, err := ask("Keyword (empty for any)")
		if err != nil {
			return err
		}
		location, err := ask("Location (empty for any)")
		if err != nil {
			return err
		}
		jobs, err := svc.SearchJobs(keyword, location, "")
		if err != nil {
			return err
		}
		logger.Info("jobs found", zap.Int("count", len(jobs)))
		printJSON(jobs)
		return nil
	case PromptApplicationStatus:
		id, err := ask("Application id")
		if err != nil {
			return err
		}
		status, err := svc.ApplicationStatus(id)
		if err != nil {
			return err
		}
		printJSON(status)
		return nil
	case PromptListApplications:
		jobID, err := ask("Job id")
		if err != nil {
			return err
		}
		apps, err := svc.ListApplicationsForJob(jobID)
		if err != nil {
			return err
		}
		logger.Info("applications found", zap.Int("count", len(apps)))
		printJSON(apps)
		return nil
	case PromptEligibility:
		jobID, candidates, err := askScreening()
		if err != nil {
			return err
		}
		results, err := svc.FilterEligibility(jobID, candidates)
		if err != nil {
			return err
		}
		printJSON(results)
		return nil
	case PromptRankCandidates:
		jobID, candidates, err := askScreening()
		if err != nil {
			return err
		}
		results, err := svc.RankCandidates(jobID, candidates, nil)
		if err != nil {
			return err
		}
		printJSON(results)
		return nil
	case PromptScheduleInterview:
		return scheduleFromPrompt(svc)
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return errors.New("invalid action: " + action)
	}
}

func scheduleFromPrompt(svc *service.Service) error {
	id, err := ask("Interview id")
	if err != nil {
		return err
	}
	applicationID, err := ask("Application id")
	if err != nil {
		return err
	}
	startTime, err := ask("Start time (RFC 3339)")
	if err != nil {
		return err
	}
	durationRaw, err := ask("Duration in minutes")
	if err != nil {
		return err
	}
	duration, err := strconv.Atoi(strings.TrimSpace(durationRaw))
	if err != nil {
		return errors.New("duration must be a number")
	}
	interviewer, err := ask("Interviewer")
	if err != nil {
		return err
	}
	location, err := ask("Location (empty for online)")
	if err != nil {
		return err
	}

	interview, err := svc.ScheduleInterview(id, applicationID, startTime, duration, interviewer, location)
	if err != nil {
		return err
	}

	printJSON(interview)
	return nil
}

func askScreening() (string, []string, error) {
	jobID, err := ask("Job id")
	if err != nil {
		return "", nil, err
	}
	raw, err := ask("Candidate ids (comma separated)")
	if err != nil {
		return "", nil, err
	}

	var candidates []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			candidates = append(candidates, part)
		}
	}

	return jobID, candidates, nil
}

func ask(label string) (string, error) {
	input := promptui.Prompt{Label: label}
	return input.Run()
}
