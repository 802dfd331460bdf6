// Package getopts parses command lines into events and dispatches them to a tree of nested
// cmdlets.
//
// At the lowest level, a [Parser] turns argv into a stream of events: the tool name, options with
// their arguments, positional arguments and errors. Options are declared in a [Group], a tree of
// option lists searched depth-first.
//
// On top of that, a [Tool] manages a tree of [Cmdlet] values. Each cmdlet sees its own options
// plus those of its ancestors, so "tool -v remote add --name x" can mix global and local options
// freely. [Tool.Run] first follows the positional arguments down the tree to find the selected
// cmdlet, then parses the command line again with the options visible to it, converts option
// arguments and invokes the cmdlet's action.
package getopts
