// Command pngme hides, reveals and removes messages in png files by editing
// their ancillary chunks.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/tynrol/pngme/png"
	"github.com/tynrol/pngme/pngme"
)

var (
	green = color.New(color.FgGreen, color.Bold)
	red   = color.New(color.FgRed, color.Bold)
	bold  = color.New(color.Bold)
)

func main() {
	root := &cobra.Command{
		Use:           "pngme",
		Short:         "Hide messages in PNG files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(encodeCmd(), decodeCmd(), removeCmd(), encryptCmd(), decryptCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <file> <chunk-type> <payload>",
		Short: "Append a message chunk to a PNG file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := readFile(args[0])
			if err != nil {
				return err
			}
			out, err := pngme.Encode(buf, args[1], args[2])
			if err != nil {
				explain(err)
				return err
			}
			if err := pngme.WriteFileAtomic(args[0], out); err != nil {
				red.Printf("Failed to write file '%s'\n", args[0])
				return err
			}
			green.Println("Encoded message into file successfully")
			return nil
		},
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file> <chunk-type>",
		Short: "Print the message stored under a chunk type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := readFile(args[0])
			if err != nil {
				return err
			}
			message, err := pngme.Decode(buf, args[1])
			if errors.Is(err, png.ErrChunkNotFound) {
				// An absent chunk is an answer, not a failure.
				red.Print("Failed to find chunk with type ")
				bold.Printf("'%s'\n", args[1])
				return nil
			}
			if err != nil {
				explain(err)
				return err
			}
			green.Print("Found chunk with type ")
			bold.Printf("'%s'\n", args[1])
			bold.Print("Message: ")
			fmt.Println(message)
			return nil
		},
	}
}

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file> <chunk-type>",
		Short: "Remove the first chunk of the given type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := readFile(args[0])
			if err != nil {
				return err
			}
			out, err := pngme.Remove(buf, args[1])
			if errors.Is(err, png.ErrChunkNotFound) {
				bold.Printf("'%s' ", args[1])
				bold.Println("was not found")
				return err
			}
			if err != nil {
				explain(err)
				return err
			}
			if err := pngme.WriteFileAtomic(args[0], out); err != nil {
				red.Printf("Failed to write file '%s'\n", args[0])
				return err
			}
			green.Println("Removed chunk from file successfully")
			return nil
		},
	}
}

func encryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <file> <input-file>",
		Short: "Embed an encrypted file in a PNG image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := readFile(args[0])
			if err != nil {
				return err
			}
			data, err := readFile(args[1])
			if err != nil {
				return err
			}
			password, err := readPassword()
			if err != nil {
				return err
			}
			salt, err := pngme.NewSalt()
			if err != nil {
				return err
			}
			key, err := pngme.DeriveKey(password, salt)
			if err != nil {
				return err
			}
			log.Println("Encrypting data...")
			out, err := pngme.EncodeEncrypted(buf, key, salt, data)
			if err != nil {
				explain(err)
				return err
			}
			if err := pngme.WriteFileAtomic(args[0], out); err != nil {
				red.Printf("Failed to write file '%s'\n", args[0])
				return err
			}
			green.Println("Encrypted data into file successfully")
			return nil
		},
	}
}

func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <file> <output-file>",
		Short: "Extract an encrypted payload from a PNG image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := readFile(args[0])
			if err != nil {
				return err
			}
			salt, err := pngme.Salt(buf)
			if err != nil {
				explain(err)
				return err
			}
			password, err := readPassword()
			if err != nil {
				return err
			}
			key, err := pngme.DeriveKey(password, salt)
			if err != nil {
				return err
			}
			log.Println("Decrypting data...")
			data, err := pngme.DecodeEncrypted(buf, key)
			if err != nil {
				explain(err)
				return err
			}
			if err := os.WriteFile(args[1], data, 0o644); err != nil {
				red.Printf("Failed to write file '%s'\n", args[1])
				return err
			}
			green.Println("Decrypted data from file successfully")
			return nil
		},
	}
}

func readFile(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		red.Print("Failed to read file ")
		bold.Printf("'%s'\n", path)
		return nil, err
	}
	return buf, nil
}

// readPassword prompts on the terminal with echo turned off.
func readPassword() ([]byte, error) {
	fmt.Print("Password: ")
	password, err := terminal.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	return password, err
}

// explain maps the library error kinds to the user-facing messages.
func explain(err error) {
	switch {
	case errors.Is(err, png.ErrNotPNG),
		errors.Is(err, png.ErrChecksumMismatch),
		errors.Is(err, png.ErrUnexpectedEOF):
		red.Println("A bad PNG file has been given, the given PNG file may be corrupted.")
	case errors.Is(err, png.ErrInvalidASCII),
		errors.Is(err, png.ErrInvalidLength),
		errors.Is(err, png.ErrInvalidReservedChar):
		red.Println("A bad chunk type has been given, make sure it is 4 valid ASCII characters and that the third char is uppercase.")
	case errors.Is(err, png.ErrChunkNotFound):
		red.Println("No chunk with the requested type was found.")
	case errors.Is(err, png.ErrInvalidText):
		red.Println("The chunk data is not valid text.")
	default:
		red.Println("An internal error has occurred, please try again.")
	}
}
