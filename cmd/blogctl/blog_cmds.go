package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-blog-client/blogs"
	"github.com/jrsteele09/go-blog-client/internal/utils"
	"github.com/spf13/cobra"
)

func blogID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("blog id must be a positive number, got %q", arg)
	}
	return id, nil
}

func (a *app) blogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blogs",
		Short: "Read and write blogs",
	}
	cmd.AddCommand(a.blogsListCmd(), a.blogsGetCmd(), a.blogsCreateCmd())
	return cmd
}

func (a *app) blogsListCmd() *cobra.Command {
	var opts blogs.ListOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List published blogs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ready(cmd); err != nil {
				return err
			}
			list, err := a.client.Blogs().ListBlogs(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), list, func(w io.Writer) {
				for _, b := range list.Blogs {
					printBlogLine(w, b)
				}
				printPagination(w, list.Pagination)
			})
		},
	}
	cmd.Flags().IntVar(&opts.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", 0, "Blogs per page")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Only blogs in this category")
	return cmd
}

func (a *app) blogsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one blog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := blogID(args[0])
			if err != nil {
				return err
			}
			if err := a.ready(cmd); err != nil {
				return err
			}
			blog, err := a.client.Blogs().GetBlog(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), blog, func(w io.Writer) { printBlog(w, *blog) })
		},
	}
}

func (a *app) blogsCreateCmd() *cobra.Command {
	var blog blogs.NewBlog
	var tags string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Write a blog. It is saved as a draft unless --publish is set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ready(cmd); err != nil {
				return err
			}
			blog.Tags = utils.SplitTrimmed(tags, ",")
			created, err := a.client.Blogs().CreateBlog(cmd.Context(), blog)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), created, func(w io.Writer) {
				fmt.Fprintln(w, "Blog created")
				printBlogLine(w, *created)
			})
		},
	}
	cmd.Flags().StringVarP(&blog.Title, "title", "t", "", "Title")
	cmd.Flags().StringVar(&blog.Content, "content", "", "Content")
	cmd.Flags().StringVarP(&blog.Category, "category", "c", "", "Category, see 'blogctl categories'")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma separated tags")
	cmd.Flags().BoolVar(&blog.Publish, "publish", false, "Publish now instead of saving a draft")
	return cmd
}

func (a *app) commentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Read and write comments on a blog",
	}
	cmd.AddCommand(a.commentsListCmd(), a.commentsAddCmd())
	return cmd
}

func (a *app) commentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <blog-id>",
		Short: "List a blog's comments with their replies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := blogID(args[0])
			if err != nil {
				return err
			}
			if err := a.ready(cmd); err != nil {
				return err
			}
			comments, err := a.client.Blogs().ListComments(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), comments, func(w io.Writer) {
				for _, c := range threaded(comments) {
					printComment(w, c)
				}
			})
		},
	}
}

// threaded orders comments so each reply follows its parent.
func threaded(comments []blogs.Comment) []blogs.Comment {
	replies := make(map[int][]blogs.Comment)
	for _, c := range comments {
		if c.IsReply() {
			replies[*c.ParentID] = append(replies[*c.ParentID], c)
		}
	}
	out := make([]blogs.Comment, 0, len(comments))
	for _, c := range comments {
		if c.IsReply() {
			continue
		}
		out = append(out, c)
		out = append(out, replies[c.ID]...)
	}
	return out
}

func (a *app) commentsAddCmd() *cobra.Command {
	var parent int
	cmd := &cobra.Command{
		Use:   "add <blog-id> <content>",
		Short: "Comment on a blog, or reply to a comment with --parent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := blogID(args[0])
			if err != nil {
				return err
			}
			if err := a.ready(cmd); err != nil {
				return err
			}
			comment := blogs.NewComment{Content: args[1]}
			if parent > 0 {
				comment.ParentID = utils.Ptr(parent)
			}
			created, err := a.client.Blogs().AddComment(cmd.Context(), id, comment)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), created, func(w io.Writer) { printComment(w, *created) })
		},
	}
	cmd.Flags().IntVar(&parent, "parent", 0, "ID of the comment to reply to")
	return cmd
}

func (a *app) userCmd() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "user <id-or-username>",
		Short: "Show an author's profile and published blogs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ready(cmd); err != nil {
				return err
			}
			profile, err := a.client.Blogs().GetUser(cmd.Context(), args[0], page)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), profile, func(w io.Writer) {
				if profile.User != nil {
					fmt.Fprintf(w, "%s (#%d)\n", profile.User.Username, profile.User.ID)
				}
				fmt.Fprintf(w, "%d blogs, %d views, %d likes\n\n", profile.Stats.TotalBlogs, profile.Stats.TotalViewsReceived, profile.Stats.TotalLikesReceived)
				for _, b := range profile.Blogs {
					printBlogLine(w, b)
				}
				printPagination(w, profile.Pagination)
			})
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "Page of the author's blogs")
	return cmd
}

func (a *app) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories a blog can be filed under",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories, err := a.client.Blogs().Categories(cmd.Context())
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), categories, func(w io.Writer) {
				for _, c := range categories.Categories {
					fmt.Fprintln(w, c)
				}
			})
		},
	}
}

type versionInfo struct {
	App     string `json:"app" yaml:"app"`
	Version string `json:"version" yaml:"version"`
	Env     string `json:"env" yaml:"env"`
	API     string `json:"api" yaml:"api"`
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the app name, version and API it talks to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionInfo{
				App:     a.cfg.GetAppName(),
				Version: a.cfg.GetAppVersion(),
				Env:     a.cfg.GetEnv(),
				API:     a.apiURL,
			}
			return a.render(cmd.OutOrStdout(), info, func(w io.Writer) {
				fmt.Fprintln(w, figure.NewFigure(info.App, "cybermedium", true).String())
				fmt.Fprintf(w, "%s %s (%s)\napi: %s\n", info.App, info.Version, info.Env, info.API)
			})
		},
	}
}
