package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/ztk/foundation/core/validation"
	"github.com/msto63/ztk/foundation/utils/validationx"
)

var enumCmd = &cobra.Command{
	Use:   "enum <value>",
	Short: "Check a number against a set of allowed values",
	Long: `Checks that a number is one of --values. Integers and floats compare by
numeric value.

Examples:
  ztk enum --values 1,2,3 2
  ztk enum --values 0.5,1.5 1.5`,
	Args: cobra.ExactArgs(1),
	RunE: runEnum,
}

var emailCmd = &cobra.Command{
	Use:   "email <address>",
	Short: "Validate an email address",
	Long: `Validates an email address. Allowed domains come from the toolkit
configuration or --domains.

Examples:
  ztk email jane@example.com
  ztk email --domains example.com,example.org jane@corp.example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runEmail,
}

var phoneCmd = &cobra.Command{
	Use:   "phone <number>",
	Short: "Validate a phone number",
	Long: `Validates a phone number with 7 to 15 digits. With --country-code,
international numbers must carry that code.

Examples:
  ztk phone "+49 30 1234567"
  ztk phone --country-code 49 "0049 (30) 123-4567"`,
	Args: cobra.ExactArgs(1),
	RunE: runPhone,
}

func init() {
	rootCmd.AddCommand(enumCmd, emailCmd, phoneCmd)

	enumCmd.Flags().String("values", "", "comma separated allowed values")
	enumCmd.Flags().String("field", "", "field name used in messages")
	_ = enumCmd.MarkFlagRequired("values")

	emailCmd.Flags().String("domains", "", "comma separated allowed domains")
	emailCmd.Flags().String("message", "", "message template for failures")

	phoneCmd.Flags().String("country-code", "", "required international country code")
	phoneCmd.Flags().String("message", "", "message template for failures")
}

func runEnum(cmd *cobra.Command, args []string) error {
	field, _ := cmd.Flags().GetString("field")
	raw := flagList(cmd, "values")

	validator, input, err := enumValidator(field, args[0], raw)
	if err != nil {
		return err
	}
	return printResult(cmd, args[0], validator.Validate(input))
}

// enumValidator parses integers when every token is one, floats otherwise
func enumValidator(field, value string, raw []string) (validation.ValidatorFunc, interface{}, error) {
	if ints, ok := parseInts(append([]string{value}, raw...)); ok {
		return validationx.NumericEnumField(field, ints[1:]...), ints[0], nil
	}

	input, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid number %q", value)
	}
	values := make([]float64, 0, len(raw))
	for _, v := range raw {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid enum value %q", v)
		}
		values = append(values, f)
	}
	return validationx.NumericEnumField(field, values...), input, nil
}

func parseInts(tokens []string) ([]int64, bool) {
	ints := make([]int64, 0, len(tokens))
	for _, t := range tokens {
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return nil, false
		}
		ints = append(ints, n)
	}
	return ints, true
}

func runEmail(cmd *cobra.Command, args []string) error {
	result, err := validationx.ValidateEmail(args[0], validationx.ValidationOptions{
		AllowedDomains: flagList(cmd, "domains"),
		ErrorMessage:   flagString(cmd, "message"),
	})
	if err != nil {
		return err
	}
	return printResult(cmd, args[0], result)
}

func runPhone(cmd *cobra.Command, args []string) error {
	result, err := validationx.ValidatePhone(args[0], validationx.ValidationOptions{
		CountryCode:  flagString(cmd, "country-code"),
		ErrorMessage: flagString(cmd, "message"),
	})
	if err != nil {
		return err
	}
	return printResult(cmd, args[0], result)
}
