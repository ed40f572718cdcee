/* Package main: pop, a tiny concatenative language

pop reads whitespace-delimited words from its input and evaluates each one in
turn against a small stack of values.  There is no syntax beyond that: a word
that reads as a base 10 integer is pushed onto the stack, and any other word is
looked up in the environment and run.

The stack holds 8 values.  Pushing a ninth, or popping from an empty stack,
halts the machine with an error; so does handing an operation a value of the
wrong kind.  Such programs are simply broken: there is nothing within pop that
can catch the error and carry on.

An undefined word is not fatal, however: it is reported and then skipped.

The environment is a chain of bindings from words to terms.  Looking a word up
walks the chain from the newest binding to the oldest, so a newer binding
shadows any older one for the same word.  Only the built-ins are ever bound:

	Word   Function
	  .    pop top of stack and print it on its own line
	  .s   print the stack depth, like <2>, then every value bottom to top
	  +    pop top 2 elements of stack, add, push

So, for example:

	1 2 + .     prints  3
	1 2 .s      prints  <2> 1 2

When standard input is a terminal, lines are read with a ">> " prompt and line
editing.  Input ends at end of file, or when the prompt is aborted with ^C.

*/
package main
