package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fschutt/erp-site/internal/blog"
	"github.com/fschutt/erp-site/internal/config"
	"github.com/fschutt/erp-site/internal/i18n"
	"github.com/fschutt/erp-site/internal/render"
	"github.com/fschutt/erp-site/internal/writer"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the site for every configured language",
	Long: `The build command loads the site description and page template,
renders every page for every configured language (plus the per-language
blog posts), copies the static assets, and writes the whole output tree
including the root language-detection page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildProcess(toolConfig)
	},
}

func runBuildProcess(tool config.Tool) error {
	fmt.Println("Starting erp-site build...")

	site, err := config.LoadSite(tool.SitePath)
	if err != nil {
		return err
	}

	templateBytes, err := os.ReadFile(tool.TemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read page template %s: %w", tool.TemplatePath, err)
	}
	template := string(templateBytes)

	fmt.Printf("Cleaning output directory: %s\n", tool.OutputDir)
	if err := writer.Clean(tool.OutputDir); err != nil {
		return err
	}

	if _, err := os.Stat(tool.AssetsDir); !os.IsNotExist(err) {
		fmt.Printf("Copying assets from '%s'\n", tool.AssetsDir)
		if err := writer.CopyDirContents(tool.AssetsDir, filepath.Join(tool.OutputDir, "assets")); err != nil {
			return fmt.Errorf("failed to copy assets: %w", err)
		}
	} else {
		fmt.Printf("Assets directory '%s' not found, skipping copy.\n", tool.AssetsDir)
	}

	// Site-absolute asset references ("/assets/x.png") are checked for
	// existence relative to the directory holding the assets dir.
	siteRoot := filepath.Dir(tool.AssetsDir)

	for _, lang := range site.LanguageCodes() {
		fmt.Printf("Generating language '%s'\n", lang)

		table, err := i18n.Load(tool.TranslationsDir, lang)
		if err != nil {
			return err
		}
		posts, err := blog.LoadPosts(filepath.Join(tool.ContentDir, "blog", lang))
		if err != nil {
			return err
		}

		ctx := &render.Context{
			Site:  site,
			Table: table,
			Lang:  lang,
			Posts: posts,
			Root:  siteRoot,
		}

		for i := range site.Pages {
			page := &site.Pages[i]
			html, err := render.Page(ctx, page, template)
			if err != nil {
				return err
			}
			outName := page.Slug + ".html"
			if page.Slug == "home" {
				outName = "index.html"
			}
			outPath := filepath.Join(tool.OutputDir, lang, outName)
			if err := writer.WriteFile(outPath, html); err != nil {
				return err
			}
			fmt.Printf("  wrote %s\n", outPath)
		}

		postPage := config.Page{Slug: render.BlogIndexSlug(site)}
		for i := range posts {
			post := &posts[i]
			html := render.Compose(ctx, &postPage, template, render.BlogPost(ctx, post))
			outPath := filepath.Join(tool.OutputDir, lang, "blog", post.Slug+".html")
			if err := writer.WriteFile(outPath, html); err != nil {
				return err
			}
			fmt.Printf("  wrote %s\n", outPath)
		}
	}

	rootPath := filepath.Join(tool.OutputDir, "index.html")
	if err := writer.WriteFile(rootPath, render.RedirectPage(site)); err != nil {
		return err
	}
	fmt.Printf("  wrote %s\n", rootPath)

	fmt.Println("erp-site build completed successfully.")
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
