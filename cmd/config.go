package cmd

type Config struct {
	DefaultCurrency string
	DefaultLocale   string
}
