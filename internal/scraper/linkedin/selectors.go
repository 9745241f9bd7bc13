package linkedin

// All markup-location logic lives here. When LinkedIn shuffles its guest-page
// layout, this file is the only thing that should need touching.
const (
	//Search results page
	resultsListSelector = "ul.jobs-search__results-list"
	resultCardSelector  = "div.base-card, li.result-card.job-result-card"

	cardLinkSelector     = "a.base-card__full-link, h3.base-search-card__title a"
	cardTitleSelector    = "h3.base-search-card__title"
	cardCompanySelector  = "h4.base-search-card__subtitle a, h4.base-search-card__subtitle"
	cardLocationSelector = "span.job-search-card__location"
	cardDateSelector     = "time.job-search-card__listdate, time.job-search-card__listdate--new, time"
	cardSnippetSelector  = "p.job-search-card__snippet"

	//Next-page / load-more affordances
	seeMoreSelector = "button.infinite-scroller__show-more-button, a.see-more-jobs"

	//Single posting page
	detailTitleSelector       = "h1.top-card-layout__title, h1"
	detailCompanySelector     = "a.topcard__org-name-link, span.topcard__flavor"
	detailLocationSelector    = "span.topcard__flavor--bullet"
	detailDescriptionSelector = "div.show-more-less-html__markup"
)

// Guest search pages return up to 25 cards per start offset.
const pageSize = 25

// Preview text from a card is capped at this many runes.
const previewLimit = 200
