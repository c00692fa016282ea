// Package middleware groups the fiber middleware registered in front of every feature.
//
//   - rayid: keeps a client-sent X-Ray-ID or generates one, exposes it to the
//     logger and echoes it in the response.
//   - auth: checks the X-API-Key header (or a Bearer token) when a key is configured.
//     Public prefixes such as /swagger skip the check.
//
// Register rayid first so rejected requests are still traceable.
package middleware
