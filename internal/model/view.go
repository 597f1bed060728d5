package model

// View identifies a storefront screen.
type View string

const (
	ViewHome        View = "home"
	ViewProduct     View = "product"
	ViewCart        View = "cart"
	ViewRecommender View = "recommender"
	ViewCategory    View = "category"

	// Informational views.
	ViewOudWorld        View = "oud_world"
	ViewAccount         View = "account"
	ViewCustomGifts     View = "custom_gifts"
	ViewLimitedEditions View = "limited_editions"
	ViewOrigins         View = "origins"
	ViewUsageTips       View = "usage_tips"
	ViewBlog            View = "blog"
	ViewLogin           View = "login"
	ViewOrderHistory    View = "order_history"
	ViewWishlist        View = "wishlist"
	ViewAbout           View = "about"
	ViewFAQ             View = "faq"
	ViewShipping        View = "shipping"
	ViewPrivacy         View = "privacy"
	ViewTerms           View = "terms"
	ViewContact         View = "contact"
)

// InfoViews lists the static informational views in footer order.
var InfoViews = []View{
	ViewOudWorld,
	ViewCustomGifts,
	ViewLimitedEditions,
	ViewOrigins,
	ViewUsageTips,
	ViewBlog,
	ViewAccount,
	ViewLogin,
	ViewOrderHistory,
	ViewWishlist,
	ViewAbout,
	ViewFAQ,
	ViewShipping,
	ViewPrivacy,
	ViewTerms,
	ViewContact,
}

// IsInfo reports whether v is a static informational view.
func (v View) IsInfo() bool {
	for _, info := range InfoViews {
		if v == info {
			return true
		}
	}
	return false
}

// IsValid reports whether v names a known screen.
func (v View) IsValid() bool {
	switch v {
	case ViewHome, ViewProduct, ViewCart, ViewRecommender, ViewCategory:
		return true
	}
	return v.IsInfo()
}
