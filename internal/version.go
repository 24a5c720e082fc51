package internal

// Version is the current release version of the translate tool.
const Version = "0.4.2"
