package commands

import (
	"fmt"
	"strconv"

	"jobboard-portal/internal/jobs"
	"jobboard-portal/internal/models"
	"jobboard-portal/internal/store"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type companySummary struct {
	models.Company
	JobCount int `json:"job_count"`
}

func newCompaniesCmd(opts *rootOptions) *cobra.Command {
	var filters models.CompanyFilters

	cmd := &cobra.Command{
		Use:   "companies",
		Short: "List companies with their number of open positions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := opts.loadSnapshot()
			if err != nil {
				return err
			}

			all := snapshot.Companies()
			counts := jobs.CompanyJobCounts(all, snapshot.Jobs())
			matched := jobs.FilterCompanies(all, filters)

			summaries := make([]companySummary, 0, len(matched))
			for _, c := range matched {
				summaries = append(summaries, companySummary{Company: c, JobCount: counts[c.ID]})
			}

			if opts.json {
				return printJSON(cmd, map[string]interface{}{
					"companies":  summaries,
					"total":      len(summaries),
					"industries": jobs.Industries(all),
				})
			}

			out := newOutput(cmd)
			if len(summaries) == 0 {
				out.warning("No companies match the current filters")
				return nil
			}

			data := pterm.TableData{{"ID", "Name", "Industry", "Location", "Size", "Open positions"}}
			for _, s := range summaries {
				data = append(data, []string{
					s.ID, s.Name, s.Industry, s.Location, s.Size, strconv.Itoa(s.JobCount),
				})
			}
			return out.table(data)
		},
	}

	cmd.Flags().StringVarP(&filters.Search, "search", "s", "", "Match company name or description")
	cmd.Flags().StringVarP(&filters.Industry, "industry", "i", "", "Exact industry")

	return cmd
}

func newCompanyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "company <id>",
		Short: "Show a company and its open positions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := opts.loadSnapshot()
			if err != nil {
				return err
			}
			return showCompany(cmd, opts, snapshot, args[0])
		},
	}
}

func showCompany(cmd *cobra.Command, opts *rootOptions, snapshot *store.Store, id string) error {
	company, ok := snapshot.CompanyByID(id)
	if !ok {
		return fmt.Errorf("company %q not found", id)
	}
	openings := jobs.JobsForCompany(snapshot.Jobs(), company.ID)

	if opts.json {
		return printJSON(cmd, map[string]interface{}{
			"company":   company,
			"jobs":      openings,
			"job_count": len(openings),
		})
	}

	out := newOutput(cmd)
	out.section(1, company.Name)
	out.printf("%s · %s · %s employees\n", company.Industry, company.Location, company.Size)
	if company.Founded > 0 {
		out.printf("Founded %d · %s\n", company.Founded, company.Website)
	}
	out.println()
	out.println(company.Description)
	out.list("Benefits", company.Benefits)

	out.section(2, fmt.Sprintf("Open positions (%d)", len(openings)))
	if len(openings) == 0 {
		out.info("No open positions")
		return nil
	}
	return renderJobTable(out, openings)
}
