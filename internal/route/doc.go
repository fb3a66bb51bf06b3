// Package route provides the route table and stack navigator for the app.
//
// A Table maps screen names to the parameter Schema each screen requires.
// A Navigator owns the navigation stack and validates every push against the
// table, so a screen can trust that the Params it receives match its schema.
//
//	table := route.NewTable()
//	table.MustRegister("Home", route.Schema{})
//	table.MustRegister("Details", route.Schema{Fields: []route.Field{
//	    {Name: "itemId", Kind: route.KindInt},
//	    {Name: "title", Kind: route.KindString},
//	}})
//
//	nav, err := route.NewNavigator(table, "Home", nil)
//	err = nav.Navigate("Details", route.Params{"itemId": 2, "title": "Second Item"})
//	nav.Current() // Details {itemId: 2, title: "Second Item"}
//	nav.GoBack()  // Home
//
// The stack is never empty: NewNavigator installs the initial entry and
// GoBack refuses to pop it (ErrEmptyStack).
package route
