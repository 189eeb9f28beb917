package v1

// BasePath is the route prefix of version 1; resources are served from the root
const BasePath = ""
