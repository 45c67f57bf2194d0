package main

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yukioitsuki/archive-index/internal/hub"
	"github.com/yukioitsuki/archive-index/internal/index"
	"github.com/yukioitsuki/archive-index/internal/render"
	"github.com/yukioitsuki/archive-index/internal/source"
	"github.com/yukioitsuki/archive-index/pkg/types"
)

var siteCmd = &cobra.Command{
	Use:   "site [directory]",
	Short: "Write the collapsible HTML index page",
	Long: `Site enumerates PDF files from the hosted dataset (--hf) or a local
scan, renders them as collapsible directory and year sections, and
substitutes the fragment into the page template.

With --hf the index links to hosted download URLs and needs no local
files. With --fallback-local, a failed or empty dataset listing falls
back to the local scan instead of aborting.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSite,
}

func init() {
	siteCmd.Flags().Bool("hf", false, "list the hosted dataset instead of scanning local files")
	siteCmd.Flags().Bool("fallback-local", false, "fall back to the local scan when the dataset listing fails or is empty")
	siteCmd.Flags().String("repo-id", "", "dataset repository identifier")
	siteCmd.Flags().String("template", "", "HTML page template path (default templates.html)")
	siteCmd.Flags().StringP("output", "o", "", "output file (default index_local.html)")

	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	useHub, _ := cmd.Flags().GetBool("hf")
	fallbackLocal, _ := cmd.Flags().GetBool("fallback-local")
	repoID, _ := cmd.Flags().GetString("repo-id")
	if repoID == "" {
		repoID = viper.GetString("hub.repo_id")
	}
	templatePath, _ := cmd.Flags().GetString("template")
	if templatePath == "" {
		templatePath = viper.GetString("site.template")
	}
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = viper.GetString("site.output")
	}

	w := cmd.OutOrStdout()
	suffix := viper.GetString("hub.suffix")

	hubCfg := types.HubConfig{
		HTTPConfig: types.HTTPConfig{Timeout: defaultTimeout, UserAgent: defaultUserAgent},
		RepoID:     repoID,
		Suffix:     suffix,
		Token:      hubToken,
	}
	client := &hub.Client{
		HTTP: &http.Client{Timeout: hubCfg.Timeout},
		Cfg:  hubCfg,
	}

	scanCfg := types.ScanConfig{
		Root:          root,
		Extensions:    []string{suffix},
		ExcludeFolder: viper.GetString("scan.exclude_folder"),
	}

	var providers []source.Provider
	if useHub {
		providers = append(providers, &source.HubProvider{Client: client})
		if fallbackLocal {
			providers = append(providers, &source.LocalProvider{Cfg: scanCfg, Report: w})
		}
	} else {
		providers = append(providers, &source.LocalProvider{Cfg: scanCfg, Report: w})
	}

	entries, used, err := source.First(context.Background(), providers, w)
	if err != nil {
		return err
	}

	doc := index.BuildDocument(index.Group(entries), index.DocumentOptions{FoldCase: true})

	link := render.LocalLink
	if used == "huggingface" {
		link = func(e types.FileEntry) string {
			return render.Quote(client.DownloadURL(e.Path), ":/")
		}
	}

	fragment, err := render.HTMLFragment(doc, link)
	if err != nil {
		return err
	}

	page, err := render.Page(templatePath, fragment, doc.TotalFiles)
	if err != nil {
		return err
	}

	if err := render.WriteFile(output, []byte(page)); err != nil {
		return err
	}

	successf(w, "Success: %s generated with %d PDFs (source: %s)\n", output, doc.TotalFiles, used)
	return nil
}
