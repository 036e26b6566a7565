package main

import (
	"shopbot/internal/infra/auth"

	"github.com/spf13/cobra"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print the bcrypt hash for admin.passwordHash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.NewBcryptHasher().Hash(args[0])
		if err != nil {
			return err
		}
		cmd.Println(hash)

		return nil
	},
}
