// Package wikipedia implements driven.EncyclopediaClient against a
// MediaWiki installation.
//
// Search uses the Action API (/w/api.php, list=search). Articles are read
// as rendered HTML from the REST API (/w/rest.php/v1/page/{title}/html).
// Requests are throttled client-side with a token bucket and never retried.
package wikipedia
