package epochs

// Version is the current semantic version of the epochs library and CLI.
const Version = "0.1.0"
