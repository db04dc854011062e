/*
Package cli provides command-line helpers for the rql command.

Output Formatting:

Command results are printed as text or JSON:

	formatter, err := cli.NewFormatter(cli.FormatJSON)
	if err != nil {
		return err
	}
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Text output prints strings as-is and string slices one element per line.

Signal Handling:

For watch mode, cancel on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
