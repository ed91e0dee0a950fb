package commands

import (
	"fmt"
	"strings"

	"jobboard-portal/internal/jobs"
	"jobboard-portal/internal/models"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newJobsCmd(opts *rootOptions) *cobra.Command {
	var (
		search    string
		location  string
		jobType   string
		salaryMin int
		tags      []string
	)

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List job postings matching the given filters",
		Long: `List job postings. Filters combine with AND; several --tag flags
match a job carrying any one of them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := jobs.DefaultFilters(search)
			filters.Location = location
			filters.Type = models.JobType(jobType)
			filters.SalaryMin = salaryMin
			for _, tag := range tags {
				filters = jobs.AddTag(filters, tag)
			}
			if err := filters.Validate(); err != nil {
				return err
			}

			snapshot, err := opts.loadSnapshot()
			if err != nil {
				return err
			}

			all := snapshot.Jobs()
			matched := jobs.FilterJobs(all, filters)

			if opts.json {
				return printJSON(cmd, map[string]interface{}{
					"jobs":           matched,
					"total":          len(matched),
					"active_filters": jobs.ActiveFilterCount(filters),
					"filters":        filters,
				})
			}

			out := newOutput(cmd)
			if len(matched) == 0 {
				out.warning("No jobs match the current filters")
				return nil
			}
			if err := renderJobTable(out, matched); err != nil {
				return err
			}
			out.info("%d of %d jobs, %d active filters",
				len(matched), len(all), jobs.ActiveFilterCount(filters))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Match title, company, description or tags")
	cmd.Flags().StringVarP(&location, "location", "l", "", "Match location")
	cmd.Flags().StringVarP(&jobType, "type", "t", "", "Job type: "+joinTypes())
	cmd.Flags().IntVar(&salaryMin, "salary-min", 0, "Minimum of the salary band")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Skill tag, repeatable")

	return cmd
}

func newJobCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "job <id>",
		Short: "Show a job posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := opts.loadSnapshot()
			if err != nil {
				return err
			}

			job, ok := snapshot.JobByID(args[0])
			if !ok {
				return fmt.Errorf("job %q not found", args[0])
			}

			if opts.json {
				return printJSON(cmd, job)
			}

			out := newOutput(cmd)
			out.section(1, job.Title)
			out.printf("%s · %s · %s\n", job.Company.Name, job.Location, job.Type.Label())
			out.printf("Salary:   %s\n", job.SalaryRange())
			out.printf("Posted:   %s\n", job.PostedDate)
			if !job.ApplicationDeadline.IsZero() {
				out.printf("Deadline: %s\n", job.ApplicationDeadline)
			}
			out.println()
			out.println(job.Description)

			out.list("Requirements", job.Requirements)
			out.list("Benefits", job.Benefits)
			out.list("Tags", job.Tags)
			return nil
		},
	}
}

func renderJobTable(out output, list []models.Job) error {
	data := pterm.TableData{{"ID", "Title", "Company", "Location", "Type", "Salary", "Tags"}}
	for _, job := range list {
		data = append(data, []string{
			job.ID,
			job.Title,
			job.Company.Name,
			job.Location,
			string(job.Type),
			job.SalaryRange(),
			strings.Join(job.Tags, ", "),
		})
	}
	return out.table(data)
}

func joinTypes() string {
	names := make([]string, 0, len(models.JobTypes))
	for _, t := range models.JobTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
