package match

// Accessors for white-box tests.
var SearchOrder = (*Matcher).searchOrder
