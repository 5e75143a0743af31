// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-book-lending/internal/adapter"
	"github.com/MKhiriev/go-book-lending/models"
)

func (a *App) loginCommand() *cobra.Command {
	var (
		email string
		attrs map[string]string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain a token for an email and keep it for later commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			identity := models.Identity{Email: email, Attributes: stringAttributes(attrs)}
			if err := a.adapter.Login(ctx, identity); err != nil {
				return err
			}
			if err := a.tokens.Save(a.adapter.Token()); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "logged in as %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "identity email")
	cmd.Flags().StringToStringVar(&attrs, "attr", nil, "extra identity fields, key=value")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the token on the server and locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			logoutErr := a.adapter.Logout(ctx)
			if err := a.tokens.Clear(); err != nil {
				return errors.Join(logoutErr, err)
			}
			if logoutErr != nil {
				a.logger.Warn().Err(logoutErr).Str("func", "*App.logoutCommand").Msg("server logout failed")
			}

			fmt.Fprintln(a.out, "logged out")
			return nil
		},
	}
}

func (a *App) booksCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "books",
		Short: "List the catalog, optionally by exact category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			var (
				books []models.Book
				err   error
			)
			if cmd.Flags().Changed("category") {
				books, err = a.adapter.ListBooksByCategory(ctx, category)
			} else {
				books, err = a.adapter.ListBooks(ctx)
			}
			if err != nil {
				return err
			}

			renderBooks(a.out, books)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "exact, case-sensitive category")
	return cmd
}

func (a *App) bookCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "book ID",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			book, err := a.adapter.GetBook(ctx, args[0])
			if err != nil {
				return err
			}
			if book == nil {
				fmt.Fprintln(a.out, helpStyle.Render("book not found"))
				return nil
			}

			renderBook(a.out, *book)
			return nil
		},
	}
}

// bookFlags collects the book fields shared by add and update.
type bookFlags struct {
	coverImage string
	title      string
	authorName string
	category   string
	rating     float64
	quantity   int64
	attrs      map[string]string
}

func (f *bookFlags) register(cmd *cobra.Command, withQuantity bool) {
	flags := cmd.Flags()
	flags.StringVar(&f.coverImage, "cover", "", "cover image URL")
	flags.StringVarP(&f.title, "title", "t", "", "title")
	flags.StringVarP(&f.authorName, "author", "a", "", "author name")
	flags.StringVarP(&f.category, "category", "c", "", "category")
	flags.Float64VarP(&f.rating, "rating", "r", 0, "rating")
	if withQuantity {
		flags.Int64VarP(&f.quantity, "quantity", "q", 0, "available copies")
		flags.StringToStringVar(&f.attrs, "attr", nil, "extra fields, key=value")
	}
}

func (f *bookFlags) book(cmd *cobra.Command) models.Book {
	book := models.Book{
		CoverImage: f.coverImage,
		Title:      f.title,
		AuthorName: f.authorName,
		Category:   f.category,
		Rating:     f.rating,
		Attributes: stringAttributes(f.attrs),
	}
	if cmd.Flags().Changed("quantity") {
		quantity := f.quantity
		book.Quantity = &quantity
	}
	return book
}

func (a *App) addCommand() *cobra.Command {
	var flags bookFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			result, err := a.adapter.AddBook(ctx, flags.book(cmd))
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "added book %s\n", result.InsertedID)
			return nil
		},
	}

	flags.register(cmd, true)
	return cmd
}

func (a *App) updateCommand() *cobra.Command {
	var flags bookFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace cover, title, author, category and rating of a book",
		Long: "Replace cover, title, author, category and rating of a book.\n" +
			"Fields that are not given are cleared. An unknown ID creates a new book.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			result, err := a.adapter.UpdateBook(ctx, args[0], flags.book(cmd))
			if err != nil {
				return err
			}

			if result.UpsertedID != nil {
				fmt.Fprintf(a.out, "created book %s\n", *result.UpsertedID)
				return nil
			}
			fmt.Fprintf(a.out, "matched %d, modified %d\n", result.MatchedCount, result.ModifiedCount)
			return nil
		},
	}

	flags.register(cmd, false)
	return cmd
}

func (a *App) borrowCommand() *cobra.Command {
	var (
		email string
		attrs map[string]string
	)

	cmd := &cobra.Command{
		Use:   "borrow BOOK_ID",
		Short: "Borrow a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			record := models.BorrowRecord{BookID: args[0], Email: email, Attributes: stringAttributes(attrs)}
			result, err := a.adapter.Borrow(ctx, record)
			if errors.Is(err, adapter.ErrAlreadyBorrowed) {
				return fmt.Errorf("%s already holds book %s", email, args[0])
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "borrowed, record %s\n", result.InsertedID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "borrower email")
	cmd.Flags().StringToStringVar(&attrs, "attr", nil, "extra record fields, key=value")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (a *App) returnCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "return RECORD_ID BOOK_ID",
		Short: "Return a borrowed book",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			result, err := a.adapter.Return(ctx, models.ReturnRequest{ID: args[0], BookID: args[1]})
			if err != nil {
				return err
			}

			if result.DeletedCount == 0 {
				fmt.Fprintln(a.out, helpStyle.Render("no such borrow record"))
				return nil
			}
			fmt.Fprintln(a.out, "returned")
			return nil
		},
	}
}

func (a *App) borrowedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "borrowed EMAIL",
		Short: "List the books borrowed by the logged-in email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			records, err := a.adapter.Borrowed(ctx, args[0])
			if err != nil {
				return err
			}

			renderBorrows(a.out, records)
			return nil
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			version, err := a.adapter.Version(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, version)
			return nil
		},
	}
}

// stringAttributes turns key=value flags into JSON string attributes.
func stringAttributes(values map[string]string) models.Attributes {
	if len(values) == 0 {
		return nil
	}

	attrs := make(models.Attributes, len(values))
	for key, value := range values {
		raw, _ := json.Marshal(value)
		attrs[key] = raw
	}
	return attrs
}
