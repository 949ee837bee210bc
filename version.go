package pxshot

// Version is the SDK version, reported in the default User-Agent.
const Version = "1.0.0"

const defaultUserAgent = "pxshot-go/" + Version
