// Package filter selects movies from trending state with expr expressions.
//
// Expressions see one movie at a time through these variables:
//
//	Title, OriginalTitle, Overview, IMDBID, MediaType, ReleaseDate  string
//	ID                                                             int64
//	Year, Votes                                                    int
//	Popularity, Rating                                             float64
//	Released                                                       time.Time
//	Genres                                                         []string
//	Movie                                                          trending.Movie
//
// and these helpers: hasGenre, containsFold, hasPrefixFold, hasSuffixFold, lower,
// upper, daysSince, daysAgo, yearsAgo, parseDate, now. The fold helpers ignore case;
// expr's own contains, startsWith and endsWith operators do not.
//
//	hasGenre("horror") and Rating >= 7 and Year >= 2020
//	Popularity > 100 or containsFold(Title, "dune")
//	Title startsWith "Dune"
package filter
