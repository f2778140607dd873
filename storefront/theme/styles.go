package theme

type Role string

const (
	RoleBody          Role = "body"
	RoleHeader        Role = "header"
	RoleBrand         Role = "brand"
	RoleNavLink       Role = "nav_link"
	RoleSection       Role = "section"
	RoleHeading       Role = "heading"
	RoleCard          Role = "card"
	RoleCardTitle     Role = "card_title"
	RoleCardText      Role = "card_text"
	RolePrice         Role = "price"
	RoleSearchInput   Role = "search_input"
	RoleCartModal     Role = "cart_modal"
	RoleCartLine      Role = "cart_line"
	RoleCartLineTitle Role = "cart_line_title"
	RoleCartLineText  Role = "cart_line_text"
	RoleQuantityInput Role = "quantity_input"
	RoleTotal         Role = "total"
	RoleFooter        Role = "footer"
	RoleIcon          Role = "icon"
)

var styles = map[Theme]map[Role]string{
	Light: {
		RoleBody:          "bg-gray-100 text-gray-800 transition-colors duration-300",
		RoleHeader:        "bg-white shadow-md sticky top-0 z-50 transition-colors duration-300",
		RoleBrand:         "text-2xl font-bold text-gray-900",
		RoleNavLink:       "text-gray-600 hover:text-blue-600 transition duration-300",
		RoleSection:       "py-16 bg-gray-50 transition-colors duration-300",
		RoleHeading:       "text-3xl font-bold text-center mb-10 text-gray-900",
		RoleCard:          "bg-white rounded-lg shadow-lg overflow-hidden transform hover:-translate-y-2 transition-all duration-300",
		RoleCardTitle:     "text-xl font-bold mb-2 text-gray-900",
		RoleCardText:      "text-gray-600 mb-4",
		RolePrice:         "text-2xl font-bold text-blue-600",
		RoleSearchInput:   "pl-4 pr-10 py-2 rounded-full border border-gray-300 focus:outline-none focus:ring-2 focus:ring-blue-500 transition-colors duration-300 bg-white text-gray-900",
		RoleCartModal:     "bg-white w-full md:w-1/3 h-full shadow-xl flex flex-col transition-colors duration-300",
		RoleCartLine:      "flex justify-between items-center mb-4 p-2 rounded-lg bg-gray-50",
		RoleCartLineTitle: "font-semibold text-gray-800",
		RoleCartLineText:  "text-gray-500 text-sm",
		RoleQuantityInput: "quantity-input w-16 text-center border rounded-md mx-2",
		RoleTotal:         "flex justify-between items-center font-bold text-lg mb-4 text-gray-900",
		RoleFooter:        "bg-gray-900 text-white py-8",
		RoleIcon:          "fas fa-sun",
	},
	Yellow: {
		RoleBody:          "bg-yellow-100 text-yellow-900 transition-colors duration-300",
		RoleHeader:        "bg-yellow-200 shadow-md sticky top-0 z-50 transition-colors duration-300",
		RoleBrand:         "text-2xl font-bold text-yellow-900",
		RoleNavLink:       "text-yellow-700 hover:text-blue-800 transition duration-300",
		RoleSection:       "py-16 bg-yellow-50 transition-colors duration-300",
		RoleHeading:       "text-3xl font-bold text-center mb-10 text-yellow-900",
		RoleCard:          "bg-yellow-200 rounded-lg shadow-lg overflow-hidden transform hover:-translate-y-2 transition-all duration-300",
		RoleCardTitle:     "text-xl font-bold mb-2 text-yellow-900",
		RoleCardText:      "text-yellow-700 mb-4",
		RolePrice:         "text-2xl font-bold text-blue-800",
		RoleSearchInput:   "pl-4 pr-10 py-2 rounded-full border border-yellow-400 focus:outline-none focus:ring-2 focus:ring-blue-500 transition-colors duration-300 bg-yellow-300 text-yellow-900",
		RoleCartModal:     "bg-yellow-200 w-full md:w-1/3 h-full shadow-xl flex flex-col transition-colors duration-300",
		RoleCartLine:      "flex justify-between items-center mb-4 p-2 rounded-lg bg-yellow-300",
		RoleCartLineTitle: "font-semibold text-yellow-900",
		RoleCartLineText:  "text-yellow-700 text-sm",
		RoleQuantityInput: "quantity-input w-16 text-center border rounded-md mx-2 bg-yellow-400 border-yellow-500 text-yellow-900",
		RoleTotal:         "flex justify-between items-center font-bold text-lg mb-4 text-yellow-900",
		RoleFooter:        "bg-yellow-900 text-white py-8",
		RoleIcon:          "fas fa-moon",
	},
	Dark: {
		RoleBody:          "bg-gray-900 text-gray-200 transition-colors duration-300",
		RoleHeader:        "bg-gray-800 shadow-md sticky top-0 z-50 transition-colors duration-300",
		RoleBrand:         "text-2xl font-bold text-white",
		RoleNavLink:       "text-gray-300 hover:text-blue-400 transition duration-300",
		RoleSection:       "py-16 bg-gray-800 transition-colors duration-300",
		RoleHeading:       "text-3xl font-bold text-center mb-10 text-white",
		RoleCard:          "bg-gray-700 rounded-lg shadow-lg overflow-hidden transform hover:-translate-y-2 transition-all duration-300",
		RoleCardTitle:     "text-xl font-bold mb-2 text-white",
		RoleCardText:      "text-gray-300 mb-4",
		RolePrice:         "text-2xl font-bold text-blue-400",
		RoleSearchInput:   "pl-4 pr-10 py-2 rounded-full border border-gray-600 focus:outline-none focus:ring-2 focus:ring-blue-500 transition-colors duration-300 bg-gray-700 text-white",
		RoleCartModal:     "bg-gray-800 w-full md:w-1/3 h-full shadow-xl flex flex-col transition-colors duration-300",
		RoleCartLine:      "flex justify-between items-center mb-4 p-2 rounded-lg bg-gray-700",
		RoleCartLineTitle: "font-semibold text-gray-100",
		RoleCartLineText:  "text-gray-400 text-sm",
		RoleQuantityInput: "quantity-input w-16 text-center border rounded-md mx-2 bg-gray-600 border-gray-500 text-white",
		RoleTotal:         "flex justify-between items-center font-bold text-lg mb-4 text-white",
		RoleFooter:        "bg-gray-900 text-white py-8",
		RoleIcon:          "fas fa-star",
	},
}

// Styles returns the CSS classes for role under t. Unknown themes use the
// default table; unknown roles get an empty string.
func Styles(t Theme, role Role) string {
	table, ok := styles[t]
	if !ok {
		table = styles[Default]
	}
	return table[role]
}

// Classes returns the whole role table for t.
func Classes(t Theme) map[Role]string {
	table, ok := styles[t]
	if !ok {
		table = styles[Default]
	}
	out := make(map[Role]string, len(table))
	for role, classes := range table {
		out[role] = classes
	}
	return out
}
