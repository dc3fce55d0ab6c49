package sarvcrm

// Version is the library version reported in the default User-Agent.
const Version = "1.0.0"
