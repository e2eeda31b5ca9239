/*
Qc is a reverse-Polish calculator designed to be run on the command line.
Numbers are pushed onto a stack; operator words pop their operands
off it and push the result. Nothing is printed unless asked for.

Here is a brief overview by demonstration:

	% # . pops the top of the stack and prints it.
	% qc 1 2 add .
	dec: 3		hex: 0x3		oct: o3		bin: b11
	%
	% # The deeper operand is on the left.
	% qc 1 2 3 sub :.
	dec: -1		hex: 0xffffffffffffffffffffffffffffffff		oct: o3777777777777777777777777777777777777777777		bin: b11111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111
	dec: 1		hex: 0x1		oct: o1		bin: b1
	%
	% # A word prefixed with : reduces the whole stack.
	% # 1 2 3 :sub is 1 - (2 - 3).
	% qc 1 2 3 :sub .
	dec: 2		hex: 0x2		oct: o2		bin: b10
	%
	% # Literals may be written with a radix prefix:
	% # 0x or x, 0o or o, 0b or b.
	% qc x10 o10 b10 :add .
	dec: 26		hex: 0x1a		oct: o32		bin: b11010
	%
	% # endian pops a byte count and reverses that many
	% # low-order bytes of the value beneath it.
	% qc 0x1234 2 endian .
	dec: 13330		hex: 0x3412		oct: o32022		bin: b11010000010010
	%
	% # :endian does the same to every value on the stack.
	% qc 0xdeadbeef 0xbabebeef 4 :endian :.
	dec: 4022255290		hex: 0xefbebeba		oct: o35757537272		bin: b11101111101111101011111010111010
	dec: 4022250974		hex: 0xefbeadde		oct: o35757526736		bin: b11101111101111101010110111011110
	%
	% # --verbose shows the stack after each word.
	% qc --verbose 1 2 add
	Stack:		[1]
	Stack:		[1, 2]
	Stack:		[3]
	%
	% # --float works with 64-bit floating point numbers
	% # instead of 128-bit integers; --hex adds a hexadecimal
	% # rendering of printed values.
	% qc --float --hex 1 8 div .
	dec: 0.125		hex: 0x0.2
	%
	% # --word works with wrapping unsigned 256-bit words.
	% qc --word 0 1 sub .
	dec: 115792089237316195423570985008687907853269984665640564039457584007913129639935		hex: 0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff		oct: o17777777777777777777777777777777777777777777777777777777777777777777777777777777777777		bin: b1111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111111
	%

Arguments that start with -- are flags wherever they appear; anything
else is a word, so negative numbers need no quoting. With --stdin the
program is also read from standard input and with --acme from the
selection in the current acme window. --words lists the operators.

Qc exits with status 2 after printing a message if any word fails.
*/
package main
